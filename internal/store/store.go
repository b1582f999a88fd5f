package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/muurk/crewfile/internal/logging"
)

// Store provides durable list/create/delete operations over a roster
// kept in a single JSON file. All methods are safe to call from
// concurrent processes: mutations hold an exclusive advisory lock across
// their whole read-compute-write sequence.
type Store struct {
	path string
	lock *flock.Flock
}

// New creates a Store for the roster file at path.
//
// The parent directory must already exist; a missing directory is a
// storage-unavailable error, not something the store creates on its own.
// If the roster file itself does not exist yet, it is seeded with an
// empty collection so that every later read sees valid JSON.
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, newStorageError("init", path, err)
	}
	if !info.IsDir() {
		return nil, newStorageError("init", path, fmt.Errorf("%s is not a directory", dir))
	}

	s := &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, newStorageError("init", path, err)
		}
		err := s.withLock("init", func() error {
			// Re-check under the lock: another process may have seeded
			// the file between our stat and acquiring the lock.
			if _, err := os.Stat(s.path); err == nil {
				return nil
			}
			return s.write("init", []User{})
		})
		if err != nil {
			return nil, err
		}
		logging.Debug("Seeded empty roster file", zap.String("path", path))
	}

	return s, nil
}

// Path returns the roster file location this store operates on.
func (s *Store) Path() string {
	return s.path
}

// List returns all users sorted by id ascending. It performs a single
// locked read and has no side effects.
//
// Entries missing an id or name field are read leniently as 0 / "";
// only structurally malformed content (not an array of objects) is
// reported as corrupt data.
func (s *Store) List() ([]User, error) {
	var users []User
	err := s.withLock("list", func() error {
		var err error
		users, err = s.read("list")
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// Create appends a new user with the given name and persists the
// roster immediately. The assigned id is one greater than the largest
// existing id (1 for an empty roster); ids are never reused.
//
// Name validation is the caller's responsibility: the store accepts any
// string, including one that is empty after trimming.
func (s *Store) Create(name string) (User, error) {
	var created User
	err := s.withLock("create", func() error {
		users, err := s.read("create")
		if err != nil {
			return err
		}
		created = User{ID: nextID(users), Name: name}
		return s.write("create", append(users, created))
	})
	if err != nil {
		return User{}, err
	}

	logging.LogRosterChange("create", created.ID, created.Name)
	return created, nil
}

// Delete removes the user with the given id and persists the roster.
// It returns true if a user was removed, false if no user had that id;
// in the latter case the file is not rewritten at all.
func (s *Store) Delete(id int) (bool, error) {
	removed := false
	err := s.withLock("delete", func() error {
		users, err := s.read("delete")
		if err != nil {
			return err
		}

		kept := users[:0]
		for _, u := range users {
			if u.ID == id {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		if !removed {
			return nil
		}
		return s.write("delete", kept)
	})
	if err != nil {
		return false, err
	}

	if removed {
		logging.LogRosterChange("delete", id, "")
	}
	return removed, nil
}

// withLock runs fn while holding the exclusive advisory lock. The lock
// spans the entire callback so that a concurrent create/create race
// cannot assign duplicate ids; locking the read and the write
// individually would not be enough.
func (s *Store) withLock(op string, fn func() error) error {
	if err := s.lock.Lock(); err != nil {
		return newStorageError(op, s.path, err)
	}
	defer s.lock.Unlock()
	return fn()
}

// read loads and parses the roster file. Must be called with the lock
// held.
func (s *Store) read(op string) ([]User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, newStorageError(op, s.path, err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, newCorruptError(op, s.path, err)
	}
	return users, nil
}

// write serializes the full roster and atomically replaces the file
// contents via a temporary file and rename. Must be called with the
// lock held.
func (s *Store) write(op string, users []User) error {
	if users == nil {
		users = []User{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return newStorageError(op, s.path, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0600); err != nil {
		return newStorageError(op, s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return newStorageError(op, s.path, err)
	}
	return nil
}
