package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/KirkDiggler/gameportal/internal/models"
)

// client implements the Client interface over HTTP
type client struct {
	loginURL   string
	signupURL  string
	httpClient *http.Client
}

// New creates a new form client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LoginURL == "" {
		return nil, ErrEmptyLoginURL
	}
	if cfg.SignupURL == "" {
		return nil, ErrEmptySignupURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &client{
		loginURL:   cfg.LoginURL,
		signupURL:  cfg.SignupURL,
		httpClient: httpClient,
	}, nil
}

// Login posts the login form
func (c *client) Login(ctx context.Context, input *SubmitInput) (*models.AuthResponse, error) {
	return c.submit(ctx, c.loginURL, input)
}

// Signup posts the signup form
func (c *client) Signup(ctx context.Context, input *SubmitInput) (*models.AuthResponse, error) {
	return c.submit(ctx, c.signupURL, input)
}

// submit posts the fields and decodes the JSON answer. The status code is not
// inspected: endpoints report rejections through the success flag, and a body
// that is not JSON is the only failure.
func (c *client) submit(ctx context.Context, url string, input *SubmitInput) (*models.AuthResponse, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for _, key := range slices.Sorted(maps.Keys(input.Fields)) {
		if err := form.WriteField(key, input.Fields[key]); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post form: %w", err)
	}
	defer resp.Body.Close()

	var out models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}
