package errors

import (
	"fmt"
	"testing"
)

func TestGmuxError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeEntryNotFound, "entry not found")
	if err.Code != ErrCodeEntryNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeEntryNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodePersistence, "save failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodePersistence) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeEntryNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("target", "2").WithDetail("count", 3)
	if detailed.Details["target"] != "2" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := EntryNotFound("~/projects/missing")
	if err.Code != ErrCodeEntryNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeEntryNotFound, err.Code)
	}
	if err.Details["target"] != "~/projects/missing" {
		t.Error("EntryNotFound should include target detail")
	}

	err = PathNotDirectory("~/notes.txt")
	if err.Code != ErrCodeValidation {
		t.Errorf("expected code %s, got %s", ErrCodeValidation, err.Code)
	}

	err = Spawn(fmt.Errorf("exec: not found"), "vim", "~/projects/app")
	if err.Code != ErrCodeSpawn {
		t.Errorf("expected code %s, got %s", ErrCodeSpawn, err.Code)
	}
	if err.Details["program"] != "vim" {
		t.Error("Spawn should include program detail")
	}
}
