// Package identity holds the registered-principal domain model and the
// persistence contract the rest of the library is written against.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type ID string

// Identity is one registered principal. PasswordDigest is the opaque
// output of the hashing boundary; it never leaves this process through
// logging or serialization, which is why the struct deliberately
// carries no JSON tags and String redacts it.
type Identity struct {
	ID             ID
	Identifier     string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (i Identity) String() string {
	return fmt.Sprintf("Identity{ID: %s, Identifier: %s}", i.ID, i.Identifier)
}

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrIdentifierTaken  = errors.New("identifier already taken")
)

// Repository is the persistence collaborator. Create must be atomic and
// enforce identifier uniqueness (ErrIdentifierTaken); a half-written
// identity must never become visible.
type Repository interface {
	Create(ctx context.Context, ident Identity) error
	FindByIdentifier(ctx context.Context, identifier string) (Identity, error)
	FindByID(ctx context.Context, id ID) (Identity, error)
	UpdateDigest(ctx context.Context, id ID, digest string, at time.Time) error
	Delete(ctx context.Context, id ID) error
}
