package dto

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
