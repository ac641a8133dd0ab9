package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	ident := Identity{
		ID:             "id-1",
		Identifier:     "a@b.com",
		PasswordDigest: "digest",
		CreatedAt:      time.Now(),
	}
	if err := repo.Create(ctx, ident); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	byIdent, err := repo.FindByIdentifier(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("find by identifier failed: %v", err)
	}
	if byIdent.ID != "id-1" {
		t.Errorf("expected id-1, got %s", byIdent.ID)
	}

	byID, err := repo.FindByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if byID.Identifier != "a@b.com" {
		t.Errorf("expected a@b.com, got %s", byID.Identifier)
	}

	if _, err := repo.FindByIdentifier(ctx, "missing@x.com"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestMemoryRepository_DuplicateIdentifier(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := Identity{ID: "id-1", Identifier: "a@b.com", PasswordDigest: "digest-1"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dup := Identity{ID: "id-2", Identifier: "a@b.com", PasswordDigest: "digest-2"}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrIdentifierTaken) {
		t.Fatalf("expected ErrIdentifierTaken, got %v", err)
	}

	// The original record is untouched.
	got, err := repo.FindByIdentifier(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.ID != "id-1" || got.PasswordDigest != "digest-1" {
		t.Errorf("original record was clobbered: %+v", got)
	}
}

func TestMemoryRepository_UpdateDigest(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, Identity{ID: "id-1", Identifier: "a@b.com", PasswordDigest: "old"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.UpdateDigest(ctx, "id-1", "new", at); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := repo.FindByID(ctx, "id-1")
	if got.PasswordDigest != "new" {
		t.Errorf("expected new digest, got %q", got.PasswordDigest)
	}
	if !got.UpdatedAt.Equal(at) {
		t.Errorf("expected UpdatedAt %v, got %v", at, got.UpdatedAt)
	}

	if err := repo.UpdateDigest(ctx, "missing", "new", at); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, Identity{ID: "id-1", Identifier: "a@b.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "id-1"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}

	// The identifier is released for re-registration.
	if err := repo.Create(ctx, Identity{ID: "id-2", Identifier: "a@b.com"}); err != nil {
		t.Fatalf("re-create after delete failed: %v", err)
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ident := Identity{
				ID:         ID(fmt.Sprintf("id-%d", i)),
				Identifier: fmt.Sprintf("user-%d@x.com", i),
			}
			if err := repo.Create(ctx, ident); err != nil {
				t.Errorf("create %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if repo.Len() != n {
		t.Errorf("expected %d identities, got %d", n, repo.Len())
	}
}

func TestIdentity_StringRedactsDigest(t *testing.T) {
	ident := Identity{ID: "id-1", Identifier: "a@b.com", PasswordDigest: "super-secret-digest"}

	s := ident.String()
	if s == "" {
		t.Fatal("expected a string representation")
	}
	if strings.Contains(s, "super-secret-digest") {
		t.Errorf("String() leaked the digest: %q", s)
	}
	if !strings.Contains(s, "a@b.com") {
		t.Errorf("String() should carry the identifier: %q", s)
	}
}
