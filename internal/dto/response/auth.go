package response

import "github.com/devjourney/journey-go/internal/security"

// AuthResponse echoes the signed-in identity back to the client.
type AuthResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
}

// NewAuthResponse builds the response for a verified identity.
func NewAuthResponse(username string, identity *security.Identity) AuthResponse {
	return AuthResponse{
		Username: username,
		Email:    identity.Email,
		Name:     identity.Name,
		Picture:  identity.Picture,
	}
}
