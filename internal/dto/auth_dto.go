package dto

type LoginRequest struct {
	// AccessToken is the OAuth access token obtained from the identity
	// provider by the client; the server exchanges it for a session JWT.
	AccessToken string `json:"access_token" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ExpiresAt string `json:"expires_at"`
}
