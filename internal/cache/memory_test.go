package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))

	value, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	_, err := m.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	// Deleting a key that was never set is a no-op.
	assert.NoError(t, m.Delete(ctx, "never-set"))

	assert.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, m.Delete(ctx, "k"))
	assert.NoError(t, m.Delete(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetReplaces(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "k", []byte("old"), time.Minute))
	assert.NoError(t, m.Set(ctx, "k", []byte("new"), time.Minute))

	value, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}
