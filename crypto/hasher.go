package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ovdenko/credsession/constants"
)

// PasswordHasher is the one place plaintext passwords cross into. Hash
// derives a salted digest, Compare re-derives from the candidate and
// matches digests in constant time; the plaintext is never stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(digest string, password string) error
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. A cost
// outside bcrypt's supported range is rejected, zero selects the
// default.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = constants.DefaultBcryptCost
	}
	if cost < constants.MinBcryptCost || cost > constants.MaxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]",
			cost, constants.MinBcryptCost, constants.MaxBcryptCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Compare(digest string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
