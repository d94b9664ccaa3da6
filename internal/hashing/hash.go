// Package hashing provides content hash calculation for asset fingerprinting.
// Hash tokens are rendered as uppercase hexadecimal so they can be embedded
// directly in filenames.
package hashing

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// HashAlgorithm defines the behavior of a hash calculation algorithm.
// It accepts an io.Reader so callers can hash in-memory buffers and open
// files alike.
type HashAlgorithm interface {
	// Name returns the name of the algorithm (e.g., "sha256").
	// The name is recorded in manifests next to each hash value.
	Name() string

	// Sum calculates the hash of the data read from r and returns it as an
	// uppercase hexadecimal string.
	Sum(r io.Reader) (string, error)
}

// SHA256 implements the HashAlgorithm interface for SHA-256 hash calculations.
type SHA256 struct{}

// Name returns the algorithm name "sha256".
func (s *SHA256) Name() string {
	return "sha256"
}

// Sum calculates the SHA-256 hash of the data read from r.
func (s *SHA256) Sum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// SumFile calculates the hash of the file at path using algo.
// Read errors propagate unchanged; there is no retry.
func SumFile(algo HashAlgorithm, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()
	return algo.Sum(file)
}
