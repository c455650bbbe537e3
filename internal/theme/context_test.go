package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContextReturnsProviderInScope(t *testing.T) {
	t.Parallel()

	p := NewProvider(&stubStore{}, nil)
	ctx := WithProvider(context.Background(), p)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	require.Same(t, p, got)
}

func TestFromContextFailsFastOutsideScope(t *testing.T) {
	t.Parallel()

	got, err := FromContext(context.Background())
	require.Nil(t, got)
	require.ErrorIs(t, err, ErrNoProvider)
	require.Contains(t, err.Error(), "no Provider in context")
}

func TestMustFromContextPanicsOutsideScope(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, ErrNoProvider.Error(), func() {
		MustFromContext(context.Background())
	})
}

func TestNestedScopesSeeTheProvider(t *testing.T) {
	t.Parallel()

	p := NewProvider(&stubStore{}, nil)
	ctx := WithProvider(context.Background(), p)
	child, cancel := context.WithCancel(ctx)
	defer cancel()

	require.Same(t, p, MustFromContext(child))
}
