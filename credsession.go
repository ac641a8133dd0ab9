/*
Package credsession wires the default collaborators of the credential
authentication and session-identity core.

The two working parts live in their own packages: credstore owns
password storage and verification, session maps an opaque session
container back to an identity with one memoized lookup per unit of
work. This package only assembles them for callers who want the stock
configuration; anything can be swapped through the subpackage
constructors.
*/
package credsession

import (
	"github.com/ovdenko/credsession/clock"
	"github.com/ovdenko/credsession/config"
	"github.com/ovdenko/credsession/credstore"
	"github.com/ovdenko/credsession/crypto"
	"github.com/ovdenko/credsession/identity"
	"github.com/ovdenko/credsession/logger"
	"github.com/ovdenko/credsession/session"
)

type Auth struct {
	Store *credstore.Store
	Log   *logger.Logger

	repo identity.Repository
}

// New assembles a credential store over the given repository using the
// stock bcrypt hasher, uuid ids and real clock.
func New(cfg config.Config, repo identity.Repository) (*Auth, error) {
	log, err := logger.New(cfg.LogDir, "credsession", cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	hasher, err := crypto.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	store, err := credstore.New(credstore.Deps{
		Repo:   repo,
		Hasher: hasher,
		IDs:    crypto.NewUUIDGenerator(),
		Clock:  clock.NewRealClock(),
		Log:    log,
	})
	if err != nil {
		return nil, err
	}

	return &Auth{
		Store: store,
		Log:   log,
		repo:  repo,
	}, nil
}

// NewResolver builds the per-unit-of-work resolver for one session
// container. Call it once per request-equivalent; its memo must not be
// shared across requests.
func (a *Auth) NewResolver(sess session.Container) *session.Resolver {
	return session.NewResolver(a.repo, sess, a.Log)
}
