// Package common defines shared sentinel errors used across the client and
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorEmailTaken signals a unique-email violation on create or update.
	ErrorEmailTaken = errors.New("a user with this email address already exists")
)
