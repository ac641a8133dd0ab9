package token

import (
	"errors"
	"testing"
	"time"

	"github.com/ovdenko/credsession/clock"
	"github.com/ovdenko/credsession/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupCodec(t *testing.T) (*Codec, *clock.MockClock) {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	codec, err := NewCodec(testSecret, time.Hour, clk)
	if err != nil {
		t.Fatalf("failed to create codec: %v", err)
	}
	return codec, clk
}

func TestCodec_RejectsShortSecret(t *testing.T) {
	if _, err := NewCodec("short", time.Hour, nil); err == nil {
		t.Fatal("expected an error for a short secret")
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, _ := setupCodec(t)

	sess := session.NewValues()
	sess.Set(session.IdentityKey, "id-42")

	tokenString, err := codec.Issue(sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	decoded, err := codec.Decode(tokenString)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got, _ := decoded.Get(session.IdentityKey); got != "id-42" {
		t.Errorf("expected id-42, got %q", got)
	}
}

func TestCodec_AnonymousRoundTrip(t *testing.T) {
	codec, _ := setupCodec(t)

	tokenString, err := codec.Issue(session.NewValues())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	decoded, err := codec.Decode(tokenString)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if _, ok := decoded.Get(session.IdentityKey); ok {
		t.Error("anonymous token must decode to an anonymous session")
	}
}

func TestCodec_RejectsForeignKey(t *testing.T) {
	codec, clk := setupCodec(t)

	other, err := NewCodec("ffffffffffffffffffffffffffffffff", time.Hour, clk)
	if err != nil {
		t.Fatalf("failed to create second codec: %v", err)
	}

	sess := session.NewValues()
	sess.Set(session.IdentityKey, "id-42")
	tokenString, err := other.Issue(sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := codec.Decode(tokenString); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestCodec_RejectsTampered(t *testing.T) {
	codec, _ := setupCodec(t)

	sess := session.NewValues()
	sess.Set(session.IdentityKey, "id-42")
	tokenString, err := codec.Issue(sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := codec.Decode(tokenString + "x"); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
	if _, err := codec.Decode("not-a-token"); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	codec, clk := setupCodec(t)

	sess := session.NewValues()
	sess.Set(session.IdentityKey, "id-42")
	tokenString, err := codec.Issue(sess)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	clk.Advance(2 * time.Hour)

	if _, err := codec.Decode(tokenString); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken after expiry, got %v", err)
	}
}
