package httpapi

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The server repeats the client's field rules so direct API callers get the
// same 400 payload an interactive client would have prevented.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateUserRequest(req userRequest) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs["firstName"] = "First name is required"
	} else if utf8.RuneCountInString(req.FirstName) > 50 {
		errs["firstName"] = "First name must not exceed 50 characters"
	}

	if strings.TrimSpace(req.LastName) == "" {
		errs["lastName"] = "Last name is required"
	} else if utf8.RuneCountInString(req.LastName) > 50 {
		errs["lastName"] = "Last name must not exceed 50 characters"
	}

	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) {
		errs["email"] = "Email must be a valid email address"
	} else if utf8.RuneCountInString(req.Email) > 100 {
		errs["email"] = "Email must not exceed 100 characters"
	}

	if req.Phone != "" && utf8.RuneCountInString(req.Phone) > 20 {
		errs["phone"] = "Phone must not exceed 20 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
