// Package validation implements the client-side draft checks. The rules and
// messages mirror what the backend enforces, minus the uniqueness check on
// email, which only the server can decide.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/udesk/userdesk/internal/client/models"
)

const (
	maxNameLen  = 50
	maxEmailLen = 100
	maxPhoneLen = 20
)

// emailPattern accepts local@domain.tld: no whitespace or extra '@' in either
// part, and at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a draft and returns the field-keyed errors. Per field the
// first failing rule wins. An empty result means the draft is safe to submit;
// it does not guarantee the server will accept it.
func Validate(d models.Draft) models.FieldErrors {
	errs := models.FieldErrors{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[models.FieldFirstName] = "First name is required"
	} else if utf8.RuneCountInString(d.FirstName) > maxNameLen {
		errs[models.FieldFirstName] = "First name must not exceed 50 characters"
	}

	if strings.TrimSpace(d.LastName) == "" {
		errs[models.FieldLastName] = "Last name is required"
	} else if utf8.RuneCountInString(d.LastName) > maxNameLen {
		errs[models.FieldLastName] = "Last name must not exceed 50 characters"
	}

	if strings.TrimSpace(d.Email) == "" {
		errs[models.FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		errs[models.FieldEmail] = "Email must be a valid email address"
	} else if utf8.RuneCountInString(d.Email) > maxEmailLen {
		errs[models.FieldEmail] = "Email must not exceed 100 characters"
	}

	if d.Phone != "" && utf8.RuneCountInString(d.Phone) > maxPhoneLen {
		errs[models.FieldPhone] = "Phone must not exceed 20 characters"
	}

	return errs
}
