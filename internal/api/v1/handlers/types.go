package handlers

import "github.com/jobdeck/jobdeck/internal/db/models"

// MessageResponse is the minimal response body: a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the static user-facing message plus, on the create
// path only, the underlying store error detail.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JobResponse wraps a single job with its message.
type JobResponse struct {
	Message string      `json:"message"`
	Job     *models.Job `json:"job"`
}

// JobsResponse wraps a job list with its message.
type JobsResponse struct {
	Message string       `json:"message"`
	Jobs    []models.Job `json:"jobs"`
}

func msg(text string) MessageResponse {
	return MessageResponse{Message: text}
}
