package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithIdentityAndFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	id := Identity{ID: "u-1", Name: "Maria Perez", Email: "maria@example.com", Role: "admin"}
	ctx = WithIdentity(ctx, id)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestWithIdentity_RefreshReplaces(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{ID: "u-1"})
	ctx = WithIdentity(ctx, Identity{ID: "u-2"})

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-2", got.ID)
}
