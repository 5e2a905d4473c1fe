package response

// Error is the uniform error body: a single human-readable message.
type Error struct {
	Message string `json:"message"`
}

// NewError creates an error body with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}
