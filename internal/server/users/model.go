// Package users implements the server-side user domain: the record model,
// the repository implementations, and the service enforcing the business
// rules (unique email, existence checks).
package users

// User is the persisted record. ID is assigned by the store on create.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}
