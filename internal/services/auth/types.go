package auth

import "net/http"

// Config holds configuration for the form client
type Config struct {
	// LoginURL receives the login form
	LoginURL string

	// SignupURL receives the signup form
	SignupURL string

	// HTTPClient performs the requests, defaults to a client with no timeout
	HTTPClient *http.Client
}

// SubmitInput contains the form fields to post
type SubmitInput struct {
	// Fields are sent as multipart form values, in key order
	Fields map[string]string
}
