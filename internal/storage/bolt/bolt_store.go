package bolt

import (
	"fmt"
	"time"

	"github.com/brk3/quit/internal/storage"
	"go.etcd.io/bbolt"
)

const rootBucket = "quit"

// DefaultTimeout bounds the wait for the file lock held by another process.
const DefaultTimeout = time.Second

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	return OpenWithTimeout(path, DefaultTimeout)
}

// OpenWithTimeout opens the database at path, failing with bbolt.ErrTimeout
// when the lock cannot be taken within timeout.
func OpenWithTimeout(path string, timeout time.Duration) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(rootBucket)).Get([]byte(key))
		if v == nil {
			return storage.ErrNotFound
		}
		// bolt values are only valid for the life of the transaction
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (s *Store) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(rootBucket)).Put([]byte(key), value)
	})
}

var _ storage.KV = (*Store)(nil)
