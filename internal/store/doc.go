// Package store implements the persistent crew roster.
//
// The roster is a flat collection of users, each a {id, name} pair, kept
// in a single JSON file on disk. The store exposes three operations:
// List, Create and Delete. Identifiers are assigned monotonically
// (max existing id + 1) and are never reused, even after deletions leave
// gaps in the sequence.
//
// # Persistence
//
// Every write serializes the entire collection and replaces the file via
// a temporary file and an atomic rename, so the file on disk is always
// either the pre-write or the post-write state. The file is
// pretty-printed UTF-8 JSON with HTML escaping disabled, so it stays
// human-editable:
//
//	[
//	  {
//	    "id": 1,
//	    "name": "Alice"
//	  }
//	]
//
// # Locking
//
// Create and Delete hold one exclusive advisory lock (a flock on a
// sidecar .lock file) across their entire read-compute-write sequence.
// Locking only the read and the write individually would let two
// processes compute the same next id; the full-span lock is what keeps
// ids unique across processes. List holds the same lock for its single
// read. The sidecar file is used because the atomic rename replaces the
// data file's inode, which would orphan a lock taken on the data file
// itself.
//
// # Errors
//
// Failures are classified into two categories: ErrTypeStorageUnavailable
// (missing directory, unreadable or unwritable file) and
// ErrTypeCorruptData (file contents do not parse as a roster). Use
// IsStorageUnavailable and IsCorruptData to branch on them. The store
// never repairs or discards existing data on a failed read.
//
// # Usage Example
//
//	s, err := store.New("/var/lib/crewfile/users.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	user, err := s.Create("Alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("created #%d\n", user.ID)
//
//	users, _ := s.List()      // sorted by id ascending
//	removed, _ := s.Delete(1) // true if the id existed
package store
