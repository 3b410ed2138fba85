package objectstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Put(ctx, "film/a/1.jpg", strings.NewReader("bytes"), 5, "image/jpeg"))
	obj, ok := m.Get("film/a/1.jpg")
	require.True(t, ok)
	assert.Equal(t, "bytes", string(obj.Body))
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, []string{"film/a/1.jpg"}, m.Keys())

	require.NoError(t, m.Delete(ctx, "film/a/1.jpg"))
	require.NoError(t, m.Delete(ctx, "never/existed"))
	assert.Empty(t, m.Keys())
	assert.Equal(t, []string{"film/a/1.jpg", "never/existed"}, m.Deleted())

	assert.ErrorIs(t, m.Put(ctx, "", strings.NewReader(""), 0, ""), ErrEmptyKey)
}
