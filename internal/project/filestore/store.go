package filestore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/dshills/helios/internal/engine/buffer"
	"github.com/dshills/helios/internal/project/vfs"
)

// Store reads and writes documents through a VFS.
// It holds no per-document state and is safe for concurrent use as long
// as concurrent saves target different paths.
type Store struct {
	vfs         vfs.VFS
	maxFileSize int64 // Maximum file size to load (0 = unlimited)
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size Load accepts.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// NewStore creates a Store on top of fsys.
func NewStore(fsys vfs.VFS, opts ...Option) *Store {
	s := &Store{vfs: fsys}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TempPath returns the temp file Save writes before renaming over path.
func (s *Store) TempPath(path string) string {
	return s.vfs.Join(s.vfs.Dir(path), "."+s.vfs.Base(path)+".tmp")
}

// Load reads path into a new buffer associated with it. Invalid UTF-8 is
// replaced with U+FFFD; line endings are kept as they are.
func (s *Store) Load(path string, opts ...buffer.Option) (*buffer.Buffer, error) {
	info, err := s.vfs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PathError{Op: "load", Path: path, Err: ErrFileNotFound}
		}
		return nil, &PathError{Op: "load", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "load", Path: path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, &PathError{Op: "load", Path: path, Err: ErrFileTooLarge}
	}

	content, err := s.vfs.ReadFile(path)
	if err != nil {
		return nil, &PathError{Op: "load", Path: path, Err: err}
	}
	text, _ := vfs.DecodeUTF8(content)

	opts = append([]buffer.Option{buffer.WithFilePath(path)}, opts...)
	return buffer.NewBufferFromString(text, opts...), nil
}

// Save atomically replaces path with the text streamed from src. An
// existing target keeps its permission bits.
func (s *Store) Save(ctx context.Context, path string, src io.WriterTo) error {
	if err := ctx.Err(); err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}
	info, statErr := s.vfs.Stat(path)
	exists := statErr == nil
	if exists && info.IsDir() {
		return &PathError{Op: "save", Path: path, Err: ErrIsDirectory}
	}

	tmp := s.TempPath(path)
	f, err := s.vfs.Create(tmp)
	if err != nil {
		return &PathError{Op: "create", Path: tmp, Err: err}
	}

	if err := writeAndSync(f, src); err != nil {
		f.Close()
		s.vfs.Remove(tmp)
		return &PathError{Op: "write", Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		s.vfs.Remove(tmp)
		return &PathError{Op: "close", Path: tmp, Err: err}
	}
	if exists {
		if err := s.vfs.Chmod(tmp, info.Mode().Perm()); err != nil {
			s.vfs.Remove(tmp)
			return &PathError{Op: "chmod", Path: tmp, Err: err}
		}
	}
	if err := s.vfs.Rename(tmp, path); err != nil {
		s.vfs.Remove(tmp)
		return &PathError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func writeAndSync(f vfs.File, src io.WriterTo) error {
	w := bufio.NewWriter(f)
	if _, err := src.WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
