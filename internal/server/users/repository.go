package users

import "context"

// Repository is the storage surface for user records. List returns records in
// ascending id order. Get/Update/Delete return common.ErrorNotFound for
// missing ids; Create and Update return common.ErrorEmailTaken when the
// unique email constraint is violated.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}
