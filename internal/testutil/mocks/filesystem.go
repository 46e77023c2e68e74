package mocks

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hostprep/hostprep/internal/ports"
)

// FileSystem is a thread-safe test double for ports.FileSystem.
type FileSystem struct {
	mu       sync.RWMutex
	files    map[string][]byte
	modes    map[string]os.FileMode
	modTimes map[string]time.Time
	dirs     map[string]bool

	writeErr  error
	appendErr error
	readErr   error
	renameErr error

	renames [][2]string
}

// NewFileSystem creates a new FileSystem mock.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:    make(map[string][]byte),
		modes:    make(map[string]os.FileMode),
		modTimes: make(map[string]time.Time),
		dirs:     make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem.
func (fs *FileSystem) AddFile(path string, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = []byte(content)
}

// AddDir adds a directory to the mock filesystem.
func (fs *FileSystem) AddDir(path string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.dirs[path] = true
}

// SetModTime sets the recorded modification time for a path.
func (fs *FileSystem) SetModTime(path string, t time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.modTimes[path] = t
}

// FailWrites makes all WriteFile calls return the given error.
func (fs *FileSystem) FailWrites(err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.writeErr = err
}

// FailAppends makes all AppendFile calls return the given error.
func (fs *FileSystem) FailAppends(err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.appendErr = err
}

// FailReads makes all ReadFile calls return the given error.
func (fs *FileSystem) FailReads(err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.readErr = err
}

// FailRenames makes all Rename calls return the given error.
func (fs *FileSystem) FailRenames(err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.renameErr = err
}

// ReadFile reads a file from the mock filesystem.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.readErr != nil {
		return nil, fs.readErr
	}
	if content, ok := fs.files[path]; ok {
		return content, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// WriteFile writes a file to the mock filesystem.
func (fs *FileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.writeErr != nil {
		return fs.writeErr
	}
	fs.files[path] = data
	fs.modes[path] = perm
	fs.modTimes[path] = time.Now()
	return nil
}

// AppendFile appends to a file, creating it if absent.
func (fs *FileSystem) AppendFile(path string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.appendErr != nil {
		return fs.appendErr
	}
	if _, ok := fs.files[path]; !ok {
		fs.modes[path] = perm
	}
	fs.files[path] = append(fs.files[path], data...)
	fs.modTimes[path] = time.Now()
	return nil
}

// Exists checks if a file exists in the mock filesystem.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, fileExists := fs.files[path]
	return fileExists || fs.dirs[path]
}

// Remove removes a file from the mock filesystem.
func (fs *FileSystem) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.files, path)
	delete(fs.modes, path)
	delete(fs.modTimes, path)
	delete(fs.dirs, path)
	return nil
}

// MkdirAll creates a directory in the mock filesystem.
func (fs *FileSystem) MkdirAll(path string, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.dirs[path] = true
	return nil
}

// Rename renames a file in the mock filesystem, carrying its recorded mode
// and modification time to the new path.
func (fs *FileSystem) Rename(oldPath, newPath string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.renameErr != nil {
		return fs.renameErr
	}
	content, ok := fs.files[oldPath]
	if !ok {
		return fmt.Errorf("file not found: %s", oldPath)
	}
	fs.files[newPath] = content
	fs.modes[newPath] = fs.modes[oldPath]
	fs.modTimes[newPath] = fs.modTimes[oldPath]
	delete(fs.files, oldPath)
	delete(fs.modes, oldPath)
	delete(fs.modTimes, oldPath)
	fs.renames = append(fs.renames, [2]string{oldPath, newPath})
	return nil
}

// Renamed reports whether a rename from oldPath to newPath was performed.
func (fs *FileSystem) Renamed(oldPath, newPath string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	for _, r := range fs.renames {
		if r[0] == oldPath && r[1] == newPath {
			return true
		}
	}
	return false
}

// IsDir checks if a path is a directory in the mock filesystem.
func (fs *FileSystem) IsDir(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.dirs[path]
}

// GetFileInfo returns metadata about a file in the mock filesystem.
func (fs *FileSystem) GetFileInfo(path string) (ports.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	modTime := fs.modTimes[path]
	if modTime.IsZero() {
		modTime = time.Now()
	}

	if content, ok := fs.files[path]; ok {
		mode := fs.modes[path]
		if mode == 0 {
			mode = 0o644
		}
		return ports.FileInfo{
			Size:    int64(len(content)),
			Mode:    mode,
			ModTime: modTime,
			IsDir:   false,
		}, nil
	}

	if fs.dirs[path] {
		return ports.FileInfo{
			Size:    0,
			Mode:    0o755,
			ModTime: modTime,
			IsDir:   true,
		}, nil
	}

	return ports.FileInfo{}, fmt.Errorf("file not found: %s", path)
}

// Mode returns the permission bits recorded for a written or appended file.
func (fs *FileSystem) Mode(path string) os.FileMode {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.modes[path]
}

// Reset clears all files and directories.
func (fs *FileSystem) Reset() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files = make(map[string][]byte)
	fs.modes = make(map[string]os.FileMode)
	fs.modTimes = make(map[string]time.Time)
	fs.dirs = make(map[string]bool)
	fs.writeErr = nil
	fs.appendErr = nil
	fs.readErr = nil
	fs.renameErr = nil
	fs.renames = nil
}

// Ensure FileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*FileSystem)(nil)
