package api

import "errors"

// ErrUnavailable indicates a transport failure: the request never produced
// a decodable response. Its text doubles as the user-facing fallback.
var ErrUnavailable = errors.New("network error occurred")

// Error is an application-level rejection: the backend answered, set its
// success indicator to false, and possibly attached a reason.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "request rejected"
	}
	return e.Message
}

// RejectionMessage extracts the server-provided reason from err, if err is
// an application-level rejection with one. The second return reports
// whether a message was found.
func RejectionMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
