// Package state implements ports.StateStore backends for persisted project state.
package state

import (
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// openTimeout bounds how long an operation waits for the database lock held by another process.
const openTimeout = time.Second

var _ ports.StateStore = (*BoltStore)(nil)

// BoltStore keeps state in a bolt database. Values live in a bucket per
// scope, nested in a bucket per project.
//
// The database is opened for the duration of each operation only, so a
// long-running watcher and one-shot commands can share the file.
type BoltStore struct {
	path    string
	project []byte
}

// OpenBolt creates the database at path if needed and returns a store for project.
func OpenBolt(path, project string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	s := &BoltStore{path: path, project: []byte(project)}
	if err := s.with(false, func(*bbolt.DB) error { return nil }); err != nil {
		return nil, err
	}

	return s, nil
}

// with opens the database, runs fn and closes it again. A read-only open
// takes a shared lock.
func (s *BoltStore) with(readOnly bool, fn func(db *bbolt.DB) error) (err error) {
	db, err := bbolt.Open(s.path, domain.PrivateFilePerm, &bbolt.Options{
		Timeout:  openTimeout,
		ReadOnly: readOnly,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, domain.ErrStoreWriteFailed.Error()), "path", s.path)
		}
	}()

	return fn(db)
}

// Get returns the value stored under scope and key, or "" if there is none.
func (s *BoltStore) Get(scope, key string) (string, error) {
	var value string

	err := s.with(true, func(db *bbolt.DB) error {
		err := db.View(func(tx *bbolt.Tx) error {
			projectBkt := tx.Bucket(s.project)
			if projectBkt == nil {
				return nil
			}
			scopeBkt := projectBkt.Bucket([]byte(scope))
			if scopeBkt == nil {
				return nil
			}
			value = string(scopeBkt.Get([]byte(key)))
			return nil
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Put overwrites the value stored under scope and key.
func (s *BoltStore) Put(scope, key, value string) error {
	return s.with(false, func(db *bbolt.DB) error {
		err := db.Update(func(tx *bbolt.Tx) error {
			projectBkt, err := tx.CreateBucketIfNotExists(s.project)
			if err != nil {
				return err
			}
			scopeBkt, err := projectBkt.CreateBucketIfNotExists([]byte(scope))
			if err != nil {
				return err
			}
			return scopeBkt.Put([]byte(key), []byte(value))
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
		}
		return nil
	})
}

// Close does nothing; the database is only open during an operation.
func (s *BoltStore) Close() error {
	return nil
}
