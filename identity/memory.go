package identity

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is a process-local Repository. It is safe for
// concurrent use and honors the same uniqueness and atomicity contract
// as the postgres implementation, which makes it the backing store of
// choice for tests and small embedded deployments.
type MemoryRepository struct {
	mu           sync.RWMutex
	byID         map[ID]Identity
	byIdentifier map[string]ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:         make(map[ID]Identity),
		byIdentifier: make(map[string]ID),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, ident Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIdentifier[ident.Identifier]; exists {
		return ErrIdentifierTaken
	}

	r.byID[ident.ID] = ident
	r.byIdentifier[ident.Identifier] = ident.ID
	return nil
}

func (r *MemoryRepository) FindByIdentifier(ctx context.Context, identifier string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIdentifier[identifier]
	if !ok {
		return Identity{}, ErrIdentityNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id ID) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ident, ok := r.byID[id]
	if !ok {
		return Identity{}, ErrIdentityNotFound
	}
	return ident, nil
}

func (r *MemoryRepository) UpdateDigest(ctx context.Context, id ID, digest string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ident, ok := r.byID[id]
	if !ok {
		return ErrIdentityNotFound
	}

	ident.PasswordDigest = digest
	ident.UpdatedAt = at
	r.byID[id] = ident
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ident, ok := r.byID[id]
	if !ok {
		return ErrIdentityNotFound
	}

	delete(r.byIdentifier, ident.Identifier)
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
