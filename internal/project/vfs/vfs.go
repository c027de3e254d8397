// Package vfs provides the file system abstraction used for loading and
// saving documents.
//
// OSFS is the production implementation. MemFS keeps everything in
// memory and can inject failures into individual operations, which makes
// the atomic save path testable without touching disk.
package vfs

import (
	"io"
	"io/fs"
	"time"
)

// VFS is the set of file operations document persistence needs.
type VFS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// Create creates or truncates a file for writing.
	Create(path string) (File, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// Chmod sets the permission bits of a file.
	Chmod(path string, mode fs.FileMode) error

	// Rename renames a file, replacing newPath if it exists.
	Rename(oldPath, newPath string) error

	// Join joins path elements.
	Join(elem ...string) string

	// Dir returns the directory portion of a path.
	Dir(path string) string

	// Base returns the last element of a path.
	Base(path string) string
}

// File is a file opened for writing.
type File interface {
	io.Writer

	// Sync commits the written content to stable storage.
	Sync() error

	// Close closes the file.
	Close() error
}

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path, name string, size int64, mode fs.FileMode, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{
		path:    path,
		name:    name,
		size:    size,
		mode:    mode,
		modTime: modTime,
		isDir:   isDir,
	}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
