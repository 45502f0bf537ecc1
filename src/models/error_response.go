package models

// ErrorResponse is the standard error envelope for every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
