// Package credstore owns credential verification and the hashing
// boundary: it is the only package that ever sees a plaintext password,
// and only for the duration of one call.
package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovdenko/credsession/clock"
	"github.com/ovdenko/credsession/crypto"
	"github.com/ovdenko/credsession/identity"
	"github.com/ovdenko/credsession/logger"
)

type Store struct {
	repo   identity.Repository
	hasher crypto.PasswordHasher
	ids    crypto.IDGenerator
	clock  clock.Clock
	log    *logger.Logger

	// decoyDigest is compared against when the identifier is unknown so
	// that the unknown-identifier and wrong-password paths cost the same.
	decoyDigest string
}

type Deps struct {
	Repo   identity.Repository
	Hasher crypto.PasswordHasher
	IDs    crypto.IDGenerator
	Clock  clock.Clock
	Log    *logger.Logger
}

func New(deps Deps) (*Store, error) {
	if deps.Repo == nil {
		return nil, errors.New("credstore: repository is required")
	}
	if deps.Hasher == nil {
		return nil, errors.New("credstore: password hasher is required")
	}
	if deps.IDs == nil {
		deps.IDs = crypto.NewUUIDGenerator()
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Log == nil {
		log, err := logger.New("", "credstore", "")
		if err != nil {
			return nil, err
		}
		deps.Log = log
	}

	seed, err := deps.IDs.NewID()
	if err != nil {
		return nil, fmt.Errorf("credstore: failed to seed decoy digest: %w", err)
	}
	decoy, err := deps.Hasher.Hash(seed)
	if err != nil {
		return nil, fmt.Errorf("credstore: failed to compute decoy digest: %w", err)
	}

	return &Store{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		ids:         deps.IDs,
		clock:       deps.Clock,
		log:         deps.Log,
		decoyDigest: decoy,
	}, nil
}

type RegisterInput struct {
	Identifier           string
	Password             string
	PasswordConfirmation string
}

// Register creates a new identity. The plaintext password and its
// confirmation live only in the input value; nothing but the digest is
// handed to the repository.
func (s *Store) Register(ctx context.Context, input RegisterInput) (identity.Identity, error) {
	s.log.WithFields(ctx, logger.Fields{
		"identifier": input.Identifier,
		"action":     "register_attempt",
	}).Info("register attempt")

	if err := validateRegister(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identifier": input.Identifier,
			"action":     "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		incrementRegistrationFailures(err)
		return identity.Identity{}, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identifier": input.Identifier,
			"action":     "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		incrementRegistrationFailures(err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	id, err := s.ids.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identifier": input.Identifier,
			"action":     "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		incrementRegistrationFailures(err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	now := s.clock.Now()
	ident := identity.Identity{
		ID:             identity.ID(id),
		Identifier:     input.Identifier,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, ident); err != nil {
		if errors.Is(err, identity.ErrIdentifierTaken) {
			s.log.WithFields(ctx, logger.Fields{
				"identifier": input.Identifier,
				"action":     "register_identifier_taken",
			}).Warn("register failed: identifier already registered")
			incrementRegistrationFailures(ErrIdentifierTaken)
			return identity.Identity{}, ErrIdentifierTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"identifier": input.Identifier,
			"action":     "register_create_failed",
		}).Errorf("register failed: %v", err)
		incrementRegistrationFailures(err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"identifier":  ident.Identifier,
		"identity_id": string(ident.ID),
		"action":      "register_success",
	}).Info("register success")
	incrementRegistrations()

	return ident, nil
}

// Verify resolves an identifier and checks the candidate password
// against the stored digest. Unknown identifier and wrong password are
// the same failure, and the unknown path still burns one hash compare
// so the two are not distinguishable by timing either.
func (s *Store) Verify(ctx context.Context, identifier, password string) (identity.Identity, error) {
	s.log.WithFields(ctx, logger.Fields{
		"identifier": identifier,
		"action":     "verify_attempt",
	}).Info("verify attempt")

	ident, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, identity.ErrIdentityNotFound) {
			_ = s.hasher.Compare(s.decoyDigest, password)
			s.log.WithFields(ctx, logger.Fields{
				"identifier": identifier,
				"action":     "verify_failed",
			}).Warn("verify failed: invalid credentials")
			incrementVerifications("failure")
			return identity.Identity{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"identifier": identifier,
			"action":     "verify_fetch_failed",
		}).Errorf("verify failed: %v", err)
		incrementVerifications("error")
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	if err := s.hasher.Compare(ident.PasswordDigest, password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identifier": identifier,
			"action":     "verify_failed",
		}).Warn("verify failed: invalid credentials")
		incrementVerifications("failure")
		return identity.Identity{}, ErrInvalidCredentials
	}

	s.log.WithFields(ctx, logger.Fields{
		"identifier":  ident.Identifier,
		"identity_id": string(ident.ID),
		"action":      "verify_success",
	}).Info("verify success")
	incrementVerifications("success")

	return ident, nil
}

// ChangePassword rotates the digest under the same validation and
// hashing discipline as Register. An unknown id is surfaced as
// identity.ErrIdentityNotFound: it means the caller holds a stale
// handle, not that the user supplied bad input.
func (s *Store) ChangePassword(ctx context.Context, id identity.ID, newPassword, confirmation string) (identity.Identity, error) {
	s.log.WithFields(ctx, logger.Fields{
		"identity_id": string(id),
		"action":      "change_password_attempt",
	}).Info("change password attempt")

	if err := validatePasswordChange(newPassword, confirmation); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identity_id": string(id),
			"action":      "change_password_validation_failed",
		}).Warnf("change password validation failed: %v", err)
		return identity.Identity{}, err
	}

	ident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, identity.ErrIdentityNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"identity_id": string(id),
				"action":      "change_password_not_found",
			}).Warn("change password failed: identity not found")
			return identity.Identity{}, err
		}
		s.log.WithFields(ctx, logger.Fields{
			"identity_id": string(id),
			"action":      "change_password_fetch_failed",
		}).Errorf("change password failed: %v", err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identity_id": string(id),
			"action":      "change_password_hash_failed",
		}).Errorf("change password failed: password hash error: %v", err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	now := s.clock.Now()
	if err := s.repo.UpdateDigest(ctx, id, digest, now); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"identity_id": string(id),
			"action":      "change_password_update_failed",
		}).Errorf("change password failed: %v", err)
		return identity.Identity{}, ErrStoreFailure.WithCause(err)
	}

	ident.PasswordDigest = digest
	ident.UpdatedAt = now

	s.log.WithFields(ctx, logger.Fields{
		"identity_id": string(id),
		"action":      "change_password_success",
	}).Info("change password success")
	incrementPasswordChanges()

	return ident, nil
}
