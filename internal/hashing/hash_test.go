package hashing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SHA-256 of the empty string, uppercase hex.
const emptySHA256 = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"

func TestSHA256_Name(t *testing.T) {
	algo := &SHA256{}
	assert.Equal(t, "sha256", algo.Name())
}

func TestSHA256_Sum(t *testing.T) {
	algo := &SHA256{}

	t.Run("empty input", func(t *testing.T) {
		got, err := algo.Sum(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, emptySHA256, got)
	})

	t.Run("known vector", func(t *testing.T) {
		got, err := algo.Sum(strings.NewReader("abc"))
		require.NoError(t, err)
		assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := algo.Sum(strings.NewReader("asset content"))
		require.NoError(t, err)
		second, err := algo.Sum(strings.NewReader("asset content"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different content yields different token", func(t *testing.T) {
		first, err := algo.Sum(strings.NewReader("asset content"))
		require.NoError(t, err)
		second, err := algo.Sum(strings.NewReader("asset content."))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("uppercase output", func(t *testing.T) {
		got, err := algo.Sum(strings.NewReader("mixed case check"))
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(got), got)
	})
}

func TestSumFile(t *testing.T) {
	algo := &SHA256{}

	t.Run("hashes file content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "asset.svg")
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

		got, err := SumFile(algo, path)
		require.NoError(t, err)
		assert.Equal(t, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD", got)
	})

	t.Run("missing file propagates error", func(t *testing.T) {
		_, err := SumFile(algo, filepath.Join(t.TempDir(), "missing.svg"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
