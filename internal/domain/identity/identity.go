// Package identity carries the authenticated caller through request contexts.
// Authentication and role checks happen upstream in the identity provider; this
// service only stamps recorder/closer fields on the records it writes.
package identity

import "context"

// Identity is the externally authenticated caller.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type contextKey struct{}

// WithIdentity returns a context carrying the identity. Replacing a previous
// identity on the same context is the refresh path; deriving a fresh context
// without one is the clear path. There is no process-global session state.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the identity, reporting whether one was set.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
