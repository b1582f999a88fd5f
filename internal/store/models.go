package store

// User represents one crew member in the roster.
// Users are immutable once created; renaming is delete + create.
type User struct {
	ID   int    `json:"id"`   // Positive, unique, never reused after deletion
	Name string `json:"name"` // Display name; uniqueness is not enforced
}

// nextID returns the identifier the next created user will receive:
// one greater than the largest id currently in the collection, or 1 for
// an empty collection. Gaps left by deletions are never refilled.
func nextID(users []User) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}
