package auth

import (
	"context"

	"github.com/fekuna/gardentrack/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the signed-in identity.
func WithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the identity stored by WithIdentity.
func IdentityFrom(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}

// Actor names whoever is acting in ctx, for logs.
func Actor(ctx context.Context) string {
	if id, ok := IdentityFrom(ctx); ok {
		return id.Email
	}
	return "anonymous"
}
