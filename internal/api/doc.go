// Package api is the transport layer for the admin backend. It exposes the
// Client interface the services depend on and an HTTP/JSON implementation
// of it.
//
// The backend wraps every response in an envelope with a success indicator.
// The indicator field is historically inconsistent: SVC endpoints use
// "success", user endpoints use "status". Both shapes are decoded here so
// nothing above the transport has to know.
//
// Failures come in two tiers. A transport failure (no response at all) is
// reported as an error wrapping ErrUnavailable. A response with a false
// success indicator becomes an *Error carrying the server-provided message,
// which callers surface verbatim when present.
package api
