package session

import (
	"context"
	"errors"

	"github.com/ovdenko/credsession/identity"
	"github.com/ovdenko/credsession/logger"
	"github.com/ovdenko/credsession/metrics"
)

// Lookup is the read-side slice of identity.Repository the resolver
// needs. identity.Repository satisfies it.
type Lookup interface {
	FindByID(ctx context.Context, id identity.ID) (identity.Identity, error)
}

// Resolver maps one session container to an identity, with at most one
// backing lookup for its whole lifetime. Construct exactly one resolver
// per unit of work; the memo must never outlive the request it belongs
// to.
type Resolver struct {
	lookup Lookup
	sess   Container
	log    *logger.Logger

	resolved bool
	memo     *identity.Identity
}

func NewResolver(lookup Lookup, sess Container, log *logger.Logger) *Resolver {
	return &Resolver{
		lookup: lookup,
		sess:   sess,
		log:    log,
	}
}

// Login records the identity in the session and primes the memo, so a
// Current call in the same unit of work does not hit the store again.
func (r *Resolver) Login(ident identity.Identity) {
	r.sess.Set(IdentityKey, string(ident.ID))
	r.memo = &ident
	r.resolved = true

	if r.log != nil {
		r.log.WithFields(nil, logger.Fields{
			"identity_id": string(ident.ID),
			"action":      "session_login",
		}).Info("session established")
	}
	metrics.SessionLoginsTotal.Inc()
}

// Logout clears the session. Calling it on an anonymous session is a
// no-op.
func (r *Resolver) Logout() {
	_, wasSet := r.sess.Get(IdentityKey)
	r.sess.Delete(IdentityKey)
	r.memo = nil
	r.resolved = false

	if wasSet {
		if r.log != nil {
			r.log.WithFields(nil, logger.Fields{
				"action": "session_logout",
			}).Info("session cleared")
		}
		metrics.SessionLogoutsTotal.Inc()
	}
}

// Current resolves the session to an identity, or nil when anonymous.
// The result is memoized: repeated calls within the unit of work return
// the same value even if the backing record changes meanwhile. A
// session whose identity no longer resolves is anonymous, not an error;
// deletion outlives sessions silently.
func (r *Resolver) Current(ctx context.Context) (*identity.Identity, error) {
	if r.resolved {
		metrics.ResolverMemoHitsTotal.Inc()
		return r.memo, nil
	}

	raw, ok := r.sess.Get(IdentityKey)
	if !ok || raw == "" {
		r.memo = nil
		r.resolved = true
		return nil, nil
	}

	metrics.ResolverLookupsTotal.Inc()
	ident, err := r.lookup.FindByID(ctx, identity.ID(raw))
	if err != nil {
		if errors.Is(err, identity.ErrIdentityNotFound) {
			if r.log != nil {
				r.log.WithFields(ctx, logger.Fields{
					"identity_id": raw,
					"action":      "session_identity_gone",
				}).Warn("session references a deleted identity")
			}
			r.memo = nil
			r.resolved = true
			return nil, nil
		}
		// Backing store failure: do not memoize, the next call may
		// succeed.
		return nil, err
	}

	r.memo = &ident
	r.resolved = true
	return r.memo, nil
}

// Require is the gate protected operations call. It fails with
// ErrNotAuthenticated when the session does not resolve to an identity.
func (r *Resolver) Require(ctx context.Context) (*identity.Identity, error) {
	ident, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		return nil, ErrNotAuthenticated
	}
	return ident, nil
}
