package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySessionStore(t *testing.T) {
	store := NewInMemorySessionStore()
	ctx := context.Background()
	session := SessionContext{ID: "session-1", Locale: "en"}

	_, ok, err := store.ActiveSection(ctx, session)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveActiveSection(ctx, session, 2))
	index, ok, err := store.ActiveSection(ctx, session)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, index)
}

func TestInMemorySessionStoreRejectsInvalid(t *testing.T) {
	store := NewInMemorySessionStore()
	ctx := context.Background()
	assert.Error(t, store.SaveActiveSection(ctx, SessionContext{}, 1))
	assert.Error(t, store.SaveActiveSection(ctx, SessionContext{ID: "s"}, -1))

	_, ok, err := store.ActiveSection(ctx, SessionContext{})
	require.NoError(t, err)
	assert.False(t, ok)
}
