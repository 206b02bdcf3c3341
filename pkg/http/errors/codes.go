package errors

import "net/http"

// Canonical messages for the error envelope, matching the status codes the
// API actually emits.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
	MsgUnauthorized     = "unauthorized"
)

// MessageFor returns the canonical message for a status code.
func MessageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusUnauthorized:
		return MsgUnauthorized
	default:
		return MsgInternalError
	}
}
