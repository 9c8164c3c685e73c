package repository

import (
	"context"
	"errors"

	"github.com/greenloop/greencycle/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create when the store's unique index on
// email rejects the insert. Uniqueness is enforced at the store level so two
// concurrent registrations cannot race past an application-side check.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("not found")

// UserRepository defines persistence for user identities.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
