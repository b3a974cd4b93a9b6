package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every non-2xx
// endpoint response.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid year format"`
	ErrorDetails string    `json:"error,omitempty" example:"strconv.Atoi: parsing"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error chain.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
