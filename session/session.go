// Package session bridges an opaque session container to an identity.
// The container round-trips across requests inside some external
// session mechanism (signed cookie, server-side store); this package
// treats it as plain mutable key-value state.
package session

import "maps"

// IdentityKey is the single key this library reads and writes in a
// session container. Absent means anonymous.
const IdentityKey = "identity_id"

// Container is the minimal surface required of a session collaborator.
// Implementations do not need to be safe for concurrent use: a
// container belongs to exactly one unit of work.
type Container interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Values is the map-backed Container.
type Values struct {
	m map[string]string
}

func NewValues() *Values {
	return &Values{m: make(map[string]string)}
}

func ValuesFrom(m map[string]string) *Values {
	v := NewValues()
	maps.Copy(v.m, m)
	return v
}

func (v *Values) Get(key string) (string, bool) {
	val, ok := v.m[key]
	return val, ok
}

func (v *Values) Set(key, value string) {
	v.m[key] = value
}

func (v *Values) Delete(key string) {
	delete(v.m, key)
}

// Snapshot returns a copy of the stored state for collaborators that
// serialize the container.
func (v *Values) Snapshot() map[string]string {
	out := make(map[string]string, len(v.m))
	maps.Copy(out, v.m)
	return out
}
