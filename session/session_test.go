package session

import "testing"

func TestValues_RoundTrip(t *testing.T) {
	v := NewValues()

	if _, ok := v.Get(IdentityKey); ok {
		t.Error("new container must be empty")
	}

	v.Set(IdentityKey, "id-42")
	if got, ok := v.Get(IdentityKey); !ok || got != "id-42" {
		t.Errorf("expected id-42, got %q (ok=%v)", got, ok)
	}

	v.Delete(IdentityKey)
	if _, ok := v.Get(IdentityKey); ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting an absent key is a no-op.
	v.Delete(IdentityKey)
}

func TestValues_SnapshotIsACopy(t *testing.T) {
	v := ValuesFrom(map[string]string{IdentityKey: "id-42"})

	snap := v.Snapshot()
	snap[IdentityKey] = "tampered"

	if got, _ := v.Get(IdentityKey); got != "id-42" {
		t.Errorf("snapshot mutation leaked into the container: %q", got)
	}
}
