// Package token is a stateless session container codec: it carries a
// session's identity reference across requests inside a signed,
// expiring token. It exists for callers without a server-side session
// store; the resolver treats the decoded values like any other
// container.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ovdenko/credsession/clock"
	"github.com/ovdenko/credsession/constants"
	"github.com/ovdenko/credsession/session"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

type Codec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewCodec(secret string, ttl time.Duration, clk clock.Clock) (*Codec, error) {
	if len(secret) < constants.SessionTokenSecretMinLength {
		return nil, fmt.Errorf("session token secret must be at least %d bytes, got %d",
			constants.SessionTokenSecretMinLength, len(secret))
	}
	if ttl <= 0 {
		ttl = constants.DefaultSessionTokenTTL
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}

	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}, nil
}

// Issue signs the container's identity reference into a token string.
// An anonymous container issues an anonymous token; that is still a
// valid session, just one that resolves to no identity.
func (c *Codec) Issue(sess session.Container) (string, error) {
	now := c.clock.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	if id, ok := sess.Get(session.IdentityKey); ok && id != "" {
		claims["sub"] = id
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Decode verifies the signature and expiry and reconstructs the session
// values. Any failure collapses into ErrInvalidSessionToken; the caller
// should treat the bearer as anonymous.
func (c *Codec) Decode(tokenString string) (*session.Values, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %v", t.Method.Alg())
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(c.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSessionToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSessionToken
	}

	values := session.NewValues()
	if sub, _ := mapClaims["sub"].(string); sub != "" {
		values.Set(session.IdentityKey, sub)
	}
	return values, nil
}
