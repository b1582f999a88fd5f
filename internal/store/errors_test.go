package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeStorageUnavailable, "Storage Unavailable"},
		{ErrTypeCorruptData, "Corrupt Data"},
		{ErrorType(42), "ErrorType(42)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(tt.et), got, tt.want)
		}
	}
}

func TestStoreErrorMessage(t *testing.T) {
	err := newStorageError("list", "/tmp/users.json", os.ErrPermission)

	msg := err.Error()
	for _, want := range []string{"Storage Unavailable", "list", "/tmp/users.json", "permission denied"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	// Without an underlying error the message still names type, op and path
	bare := &StoreError{Type: ErrTypeCorruptData, Op: "create", Path: "/tmp/users.json"}
	if !strings.Contains(bare.Error(), "Corrupt Data") {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	err := newStorageError("list", "/tmp/users.json", os.ErrNotExist)

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should see through StoreError to the cause")
	}
}

func TestClassificationHelpers(t *testing.T) {
	storage := newStorageError("init", "/tmp/users.json", os.ErrPermission)
	corrupt := newCorruptError("list", "/tmp/users.json", fmt.Errorf("unexpected end of JSON input"))

	if !IsStorageUnavailable(storage) {
		t.Error("IsStorageUnavailable(storage error) = false")
	}
	if IsCorruptData(storage) {
		t.Error("IsCorruptData(storage error) = true")
	}
	if !IsCorruptData(corrupt) {
		t.Error("IsCorruptData(corrupt error) = false")
	}
	if IsStorageUnavailable(corrupt) {
		t.Error("IsStorageUnavailable(corrupt error) = true")
	}

	// Classification must survive wrapping by callers
	wrapped := fmt.Errorf("opening roster: %w", storage)
	if !IsStorageUnavailable(wrapped) {
		t.Error("IsStorageUnavailable should see through fmt.Errorf wrapping")
	}

	// And reject unrelated or nil errors
	if IsStorageUnavailable(errors.New("plain")) || IsCorruptData(nil) {
		t.Error("helpers matched a non-store error")
	}
}
