package vfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Standard error values for MemFS operations.
// These align with POSIX errors for consistency with OSFS.
var (
	errIsDir    = syscall.EISDIR
	errNotDir   = syscall.ENOTDIR
	errNotEmpty = syscall.ENOTEMPTY
	errClosed   = fs.ErrClosed
)

// Op names a MemFS operation that can be made to fail.
type Op string

// Operations accepted by FailOn.
const (
	OpRead   Op = "read"
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpSync   Op = "sync"
	OpClose  Op = "close"
	OpRename Op = "rename"
	OpRemove Op = "remove"
	OpChmod  Op = "chmod"
)

type fault struct {
	op   Op
	path string
}

// MemFS implements VFS using an in-memory file system.
// Paths are slash-separated and rooted at "/".
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu     sync.RWMutex
	files  map[string]*memFile
	dirs   map[string]bool
	faults map[fault]error
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:  make(map[string]*memFile),
		dirs:   map[string]bool{"/": true},
		faults: make(map[fault]error),
	}
}

// Ensure MemFS implements VFS.
var _ VFS = (*MemFS)(nil)

// FailOn makes every later op on filePath return err. For OpWrite, OpSync
// and OpClose the path is the one passed to Create.
func (m *MemFS) FailOn(op Op, filePath string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults[fault{op: op, path: m.cleanPath(filePath)}] = err
}

// ClearFaults removes all injected failures.
func (m *MemFS) ClearFaults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults = make(map[fault]error)
}

// faultLocked returns the injected error for op on p, wrapped like an OS
// error. Callers hold m.mu.
func (m *MemFS) faultLocked(op Op, p string) error {
	if err, ok := m.faults[fault{op: op, path: p}]; ok {
		return &fs.PathError{Op: string(op), Path: p, Err: err}
	}
	return nil
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	if err := m.faultLocked(OpRead, filePath); err != nil {
		return nil, err
	}
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)

	if f, ok := m.files[filePath]; ok {
		return NewFileInfo(filePath, path.Base(filePath), int64(len(f.content)), f.mode, f.modTime, false), nil
	}
	if m.dirs[filePath] {
		return NewFileInfo(filePath, path.Base(filePath), 0, fs.ModeDir|0755, time.Time{}, true), nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Create creates or truncates a file for writing. The file exists, empty,
// as soon as Create returns.
func (m *MemFS) Create(filePath string) (File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if err := m.faultLocked(OpCreate, filePath); err != nil {
		return nil, err
	}
	if dir := path.Dir(filePath); !m.dirs[dir] {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: fs.ErrNotExist}
	}
	if m.dirs[filePath] {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: errIsDir}
	}

	m.files[filePath] = &memFile{mode: 0644, modTime: time.Now()}
	return &memWriter{fs: m, path: filePath}, nil
}

// MkdirAll creates a directory and all parent directories.
func (m *MemFS) MkdirAll(dirPath string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dirPath = m.cleanPath(dirPath)
	current := ""
	for _, part := range strings.Split(strings.Trim(dirPath, "/"), "/") {
		if part == "" {
			continue
		}
		current += "/" + part
		if _, ok := m.files[current]; ok {
			return &fs.PathError{Op: "mkdir", Path: current, Err: errNotDir}
		}
		m.dirs[current] = true
	}
	return nil
}

// Remove removes a file or empty directory.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if err := m.faultLocked(OpRemove, filePath); err != nil {
		return err
	}

	if _, ok := m.files[filePath]; ok {
		delete(m.files, filePath)
		return nil
	}
	if !m.dirs[filePath] {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}

	prefix := strings.TrimSuffix(filePath, "/") + "/"
	for f := range m.files {
		if strings.HasPrefix(f, prefix) {
			return &fs.PathError{Op: "remove", Path: filePath, Err: errNotEmpty}
		}
	}
	for d := range m.dirs {
		if d != filePath && strings.HasPrefix(d, prefix) {
			return &fs.PathError{Op: "remove", Path: filePath, Err: errNotEmpty}
		}
	}
	delete(m.dirs, filePath)
	return nil
}

// Chmod sets the permission bits of a file.
func (m *MemFS) Chmod(filePath string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if err := m.faultLocked(OpChmod, filePath); err != nil {
		return err
	}
	f, ok := m.files[filePath]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: filePath, Err: fs.ErrNotExist}
	}
	f.mode = f.mode&^fs.ModePerm | mode.Perm()
	return nil
}

// Rename renames a file, replacing newPath if it is a file. Renaming onto
// a directory fails.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath = m.cleanPath(oldPath)
	newPath = m.cleanPath(newPath)
	if err := m.faultLocked(OpRename, newPath); err != nil {
		return err
	}

	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if m.dirs[newPath] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: errIsDir}
	}
	if !m.dirs[path.Dir(newPath)] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Join joins path elements.
func (m *MemFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// Dir returns the directory portion of a path.
func (m *MemFS) Dir(filePath string) string {
	return path.Dir(m.cleanPath(filePath))
}

// Base returns the last element of a path.
func (m *MemFS) Base(filePath string) string {
	return path.Base(filePath)
}

// cleanPath normalizes a path.
func (m *MemFS) cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// memWriter is the File returned by MemFS.Create. Writes land in the file
// immediately.
type memWriter struct {
	fs     *MemFS
	path   string
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	if w.closed {
		return 0, &fs.PathError{Op: "write", Path: w.path, Err: errClosed}
	}
	if err := w.fs.faultLocked(OpWrite, w.path); err != nil {
		return 0, err
	}
	f, ok := w.fs.files[w.path]
	if !ok {
		return 0, &fs.PathError{Op: "write", Path: w.path, Err: fs.ErrNotExist}
	}
	f.content = append(f.content, p...)
	f.modTime = time.Now()
	return len(p), nil
}

func (w *memWriter) Sync() error {
	w.fs.mu.RLock()
	defer w.fs.mu.RUnlock()
	if w.closed {
		return &fs.PathError{Op: "sync", Path: w.path, Err: errClosed}
	}
	return w.fs.faultLocked(OpSync, w.path)
}

func (w *memWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	if w.closed {
		return &fs.PathError{Op: "close", Path: w.path, Err: errClosed}
	}
	w.closed = true
	return w.fs.faultLocked(OpClose, w.path)
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string) error {
	filePath = m.cleanPath(filePath)
	if err := m.MkdirAll(path.Dir(filePath), 0755); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: errIsDir}
	}
	m.files[filePath] = &memFile{content: []byte(content), mode: 0644, modTime: time.Now()}
	return nil
}

// Files returns all file paths in the file system.
// Useful for testing and debugging.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
