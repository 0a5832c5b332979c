package store

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestMemoryGetSetDelete(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", []byte(`"v"`)))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"v"`), got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	in := []byte(`[1,2,3]`)
	require.NoError(t, kv.Set(ctx, "k", in))
	in[0] = 'x'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)
}

func TestAdapterRoundTrip(t *testing.T) {
	a := NewAdapter(NewMemory(), testLogger())
	ctx := context.Background()

	type record struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, a.Set(ctx, "k", []record{{Name: "Widget", Price: 10}}))

	var out []record
	found, err := a.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, "Widget", out[0].Name)
}

func TestAdapterMissingKey(t *testing.T) {
	a := NewAdapter(NewMemory(), testLogger())

	var out []string
	found, err := a.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestAdapterMalformedValueTreatedAsAbsent(t *testing.T) {
	kv := NewMemory()
	a := NewAdapter(kv, testLogger())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("{truncated")))

	var out map[string]string
	found, err := a.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterRemoveMissingKey(t *testing.T) {
	a := NewAdapter(NewMemory(), testLogger())
	assert.NoError(t, a.Remove(context.Background(), "missing"))
}
