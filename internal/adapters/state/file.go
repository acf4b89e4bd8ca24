package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*FileStore)(nil)

// FileStore keeps one JSON document per scope under a directory named after
// the hashed project identity.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a FileStore rooted at dir for project.
func NewFileStore(dir, project string) *FileStore {
	sum := sha256.Sum256([]byte(project))
	return &FileStore{dir: filepath.Join(dir, hex.EncodeToString(sum[:]))}
}

// Get returns the value stored under scope and key, or "" if there is none.
func (s *FileStore) Get(scope, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read(scope)
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Put overwrites the value stored under scope and key.
func (s *FileStore) Put(scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read(scope)
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.dir)
	}

	filename := s.filename(scope)
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Close is a no-op; every Put is flushed to disk.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read(scope string) (map[string]string, error) {
	filename := s.filename(scope)

	data, err := os.ReadFile(filename) //nolint:gosec // Path is built from the state directory and a fixed scope
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	return values, nil
}

func (s *FileStore) filename(scope string) string {
	return filepath.Join(s.dir, scope+".json")
}
