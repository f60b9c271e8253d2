package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore("")

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, "abc"))
	require.NoError(t, store.Save(ctx, "def"))

	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def", token)
}
