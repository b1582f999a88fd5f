package store

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		users []User
		want  int
	}{
		{"empty collection", nil, 1},
		{"single user", []User{{1, "Alice"}}, 2},
		{"gap from deletion", []User{{1, "Alice"}, {5, "Eve"}}, 6},
		{"unordered ids", []User{{3, "Carol"}, {1, "Alice"}}, 4},
		{"lenient zero id entry", []User{{0, ""}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextID(tt.users); got != tt.want {
				t.Errorf("nextID(%v) = %d, want %d", tt.users, got, tt.want)
			}
		})
	}
}
