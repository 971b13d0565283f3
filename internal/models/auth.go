package models

// AuthResponse is the JSON body returned by the login and signup endpoints
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
