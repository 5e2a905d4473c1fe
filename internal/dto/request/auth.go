package request

// GoogleAuthRequest carries the Google ID token obtained by the browser
// sign-in flow.
type GoogleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}
