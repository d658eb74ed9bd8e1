// Package profile carries the browser-profile identity through a request.
// Every profile gets its own storage namespace, mirroring how browser local
// storage is isolated per profile.
package profile

import "context"

// DefaultID is the namespace used when no profile is attached to the context
// (background jobs, tests that do not care about isolation).
const DefaultID = "default"

type ctxKey struct{}

// WithID returns a copy of ctx carrying the given profile id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the profile id stored in ctx, or DefaultID.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultID
}

// Key namespaces a storage key by the profile in ctx:
// "profile:<id>:<key>".
func Key(ctx context.Context, key string) string {
	return "profile:" + FromContext(ctx) + ":" + key
}
