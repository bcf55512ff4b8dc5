package dto

// MessageResponse is a standard success response with a short message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error body. Only a short human-readable
// message is exposed; internal detail stays in the logs.
type ErrorResponse struct {
	Message string `json:"message"`
}
