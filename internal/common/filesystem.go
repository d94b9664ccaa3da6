// Package common provides shared interfaces and utilities used across the
// cache buster packages.
package common

import (
	"io/fs"
	"os"
)

// FileSystem defines the file system operations the processor performs.
// The interface keeps the destructive output preparation mockable in tests
// and provides a consistent API across packages.
type FileSystem interface {
	// Lstat returns file information without following symlinks
	Lstat(path string) (fs.FileInfo, error)

	// Stat returns file information, following symlinks
	Stat(path string) (fs.FileInfo, error)

	// ReadDir reads the named directory, returning its entries sorted by filename
	ReadDir(path string) ([]fs.DirEntry, error)

	// MkdirAll creates a directory and all necessary parents with the specified permissions
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes a directory and all its contents
	RemoveAll(path string) error

	// FileExists checks if a file or directory exists
	FileExists(path string) (bool, error)

	// ReadFile reads the whole file at path
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path with the specified permissions
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// DefaultFileSystem implements FileSystem using standard os package functions
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// Lstat returns file information without following symlinks
func (fsys *DefaultFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns file information, following symlinks
func (fsys *DefaultFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir reads the named directory, returning its entries sorted by filename
func (fsys *DefaultFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// MkdirAll creates a directory and all necessary parents with the specified permissions
func (fsys *DefaultFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes a directory and all its contents
func (fsys *DefaultFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// FileExists checks if a file or directory exists
func (fsys *DefaultFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// ReadFile reads the whole file at path
func (fsys *DefaultFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path with the specified permissions
func (fsys *DefaultFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
