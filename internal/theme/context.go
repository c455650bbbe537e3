package theme

import (
	"context"
	"errors"
)

// ErrNoProvider is returned when a consumer asks for the theme outside
// a provider scope. That is always a programming mistake, never a
// runtime condition to recover from.
var ErrNoProvider = errors.New("theme: no Provider in context; wrap the application context with theme.WithProvider before reading the theme")

type ctxKey struct{}

// WithProvider returns a context carrying the provider. All consumers
// must live under a context derived from this one.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the provider from ctx. It fails with
// ErrNoProvider when called outside a provider scope, returning no
// partial state.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// MustFromContext is FromContext for call sites where a missing
// provider is unrecoverable. It panics with the same descriptive
// message.
func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
