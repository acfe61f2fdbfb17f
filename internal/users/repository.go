package users

import "context"

// Repository stores directory accounts keyed by canonical login.
//
// Create must atomically enforce login uniqueness: a concurrent pair of
// Create calls for the same login must fail one of them with
// common.ErrorLoginAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)

	// Clear empties the directory. Test and admin reset only; the
	// service surface never calls it on its own.
	Clear(ctx context.Context) error
}
