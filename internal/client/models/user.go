// Package models holds the client-side data shapes: server-owned user
// records, in-progress drafts, and field-keyed validation errors.
package models

// Field names as they appear in API payloads and error maps.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

// User is a server-owned record. ID is assigned on creation and immutable.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Draft is an unsaved edit of a user record. It carries no identity; the
// form controller owns one while the user is composing input.
type Draft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// DraftFromUser copies the editable fields of a record into a draft.
func DraftFromUser(u User) Draft {
	return Draft{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// Get returns the value of the named field. Unknown names yield "".
func (d Draft) Get(name string) string {
	switch name {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	}
	return ""
}

// Set writes the named field. Unknown names are ignored.
func (d *Draft) Set(name, value string) {
	switch name {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	}
}

// FieldErrors maps a field name to a single human-readable message.
// An empty map means the draft passed validation.
type FieldErrors map[string]string
