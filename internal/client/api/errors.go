package api

import (
	"net/http"

	"github.com/udesk/userdesk/internal/common"
)

// ValidationError carries the server's field-keyed validation messages
// (HTTP 400 with an "errors" object). The controllers adopt Fields verbatim.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// APIError is a general, non-field failure the server explained with a
// "message" payload, e.g. a duplicate email conflict.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, common.ErrorNotFound) match 404 responses that
// carried a message payload.
func (e *APIError) Is(target error) bool {
	return target == common.ErrorNotFound && e.Status == http.StatusNotFound
}
