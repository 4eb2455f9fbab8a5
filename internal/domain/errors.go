package domain

import "fmt"

// UpstreamError is returned when the Sessionize API answers with a non-OK
// status. Callers map well-known status codes onto user-facing messages.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("sessionize api returned status: %d", e.StatusCode)
}
