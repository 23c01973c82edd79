package dto

// ErrorResponse represents a standardized error response for the API.
// Details carries partial results, such as the count a bulk action reached before failing.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
