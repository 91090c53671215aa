package services

import (
	"errors"

	"svcadmin/internal/api"
)

// Notifier surfaces non-blocking, user-visible notifications. No failure
// routed through it is fatal: the console stays interactive and a manual
// refresh is always available.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// failMessage picks the message to surface for a failed backend call:
// the server-provided rejection reason when there is one, the generic
// network text for transport failures, otherwise the per-operation
// fallback.
func failMessage(err error, fallback string) string {
	if msg, ok := api.RejectionMessage(err); ok {
		return msg
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "Network error occurred"
	}
	return fallback
}
