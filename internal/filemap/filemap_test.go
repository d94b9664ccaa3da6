package filemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMap_Add(t *testing.T) {
	t.Run("insert succeeds once", func(t *testing.T) {
		m := New("./prod")
		require.NoError(t, m.Add("./dist/log-out.svg", "./prod/log-out.HASH.svg"))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("duplicate key fails", func(t *testing.T) {
		m := New("./prod")
		require.NoError(t, m.Add("./dist/log-out.svg", "./prod/log-out.HASH.svg"))

		err := m.Add("./dist/log-out.svg", "./prod/log-out.OTHER.svg")
		require.ErrorIs(t, err, ErrKeyExists)

		// The original entry survives the failed insert.
		got, ok := m.GetFullPath("./dist/log-out.svg")
		require.True(t, ok)
		assert.Equal(t, "./prod/log-out.HASH.svg", got)
	})
}

func TestFileMap_Get(t *testing.T) {
	m := New("./prod")
	require.NoError(t, m.Add("./dist/log-out.svg", "./prod/log-out.HASH.svg"))

	t.Run("strips base directory", func(t *testing.T) {
		got, ok := m.Get("./dist/log-out.svg")
		require.True(t, ok)
		assert.Equal(t, "/log-out.HASH.svg", got)
	})

	t.Run("exact match only", func(t *testing.T) {
		_, ok := m.Get("dist/log-out.svg")
		assert.False(t, ok)
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := m.Get("./dist/missing.svg")
		assert.False(t, ok)
	})
}

func TestFileMap_GetFullPath(t *testing.T) {
	m := New("./prod")
	require.NoError(t, m.Add("./dist/a/b/credit-card.svg", "./prod/a/b/credit-card.HASH.svg"))

	got, ok := m.GetFullPath("./dist/a/b/credit-card.svg")
	require.True(t, ok)
	assert.Equal(t, "./prod/a/b/credit-card.HASH.svg", got)

	_, ok = m.GetFullPath("dist/a/b/credit-card.svg")
	assert.False(t, ok)
}

func TestFileMap_Equal(t *testing.T) {
	a := New("./prod")
	require.NoError(t, a.Add("./dist/x.svg", "./prod/x.HASH.svg"))

	b := New("./prod")
	require.NoError(t, b.Add("./dist/x.svg", "./prod/x.HASH.svg"))
	assert.True(t, a.Equal(b))

	c := New("./other")
	require.NoError(t, c.Add("./dist/x.svg", "./prod/x.HASH.svg"))
	assert.False(t, a.Equal(c))

	assert.False(t, a.Equal(nil))
}

func TestFileMap_Entries(t *testing.T) {
	m := New("./prod")
	require.NoError(t, m.Add("./dist/x.svg", "./prod/x.HASH.svg"))

	entries := m.Entries()
	entries["./dist/x.svg"] = "tampered"

	got, ok := m.GetFullPath("./dist/x.svg")
	require.True(t, ok)
	assert.Equal(t, "./prod/x.HASH.svg", got, "Entries must return a copy")
}
