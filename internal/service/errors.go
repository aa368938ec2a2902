package service

import "errors"

var (
	// ErrPermissionDenied is returned for client-side refusals: the gated
	// action never reaches the network.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotConfirmed is returned when a delete is attempted without the
	// explicit confirmation step. No request is sent.
	ErrNotConfirmed = errors.New("confirmation required")

	// ErrNoDraft is returned when a workflow operation needs an open draft
	// and the flow is closed or mid-submit.
	ErrNoDraft = errors.New("no draft open")
)

// ValidationError is a client-side draft rejection. It blocks submission
// before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
