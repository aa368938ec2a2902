package api

import "fmt"

// AuthError is a login rejection: bad credentials or an unreachable backend.
// No session is created; the caller must resubmit.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string {
	return e.Msg
}

// BackendError is a non-2xx response. Detail carries the backend's own
// message verbatim when present, suitable for surfacing to the operator.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.StatusCode)
}

// rejection is the error body shape the backend uses for 4xx/5xx responses.
type rejection struct {
	Detail string `json:"detail"`
}
