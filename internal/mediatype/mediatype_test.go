package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		want     string
		resolved bool
	}{
		{"svg", "dist/log-out.svg", "image/svg+xml", true},
		{"nested svg", "./dist/a/b/c/d/s/d/svg/credit-card.svg", "image/svg+xml", true},
		{"png", "icon.png", "image/png", true},
		{"wasm", "858fd6c482cc75111d54.module.wasm", "application/wasm", true},
		{"uppercase extension", "LOGO.SVG", "image/svg+xml", true},
		{"no extension", "Makefile", "", false},
		{"unknown extension", "data.zzunknown", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromPath(tt.path)
			require.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "text/html", Normalize("text/html; charset=utf-8"))
	assert.Equal(t, "image/svg+xml", Normalize("IMAGE/SVG+XML"))
	assert.Equal(t, "image/png", Normalize(" image/png "))
}

func TestFilter(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		f := NewFilter(nil)
		assert.True(t, f.Empty())
		assert.False(t, f.Matches("image/png"))
	})

	t.Run("matches configured types", func(t *testing.T) {
		f := NewFilter([]string{"image/svg+xml", "image/png"})
		assert.False(t, f.Empty())
		assert.True(t, f.Matches("image/svg+xml"))
		assert.True(t, f.Matches("image/png; some=param"))
		assert.False(t, f.Matches("image/gif"))
	})
}
