package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCategoryForStatus(t *testing.T) {
	cases := map[int]ErrorCategory{
		400: Irrecoverable,
		401: Irrecoverable,
		404: Irrecoverable,
		408: Recoverable,
		429: Recoverable,
		500: Recoverable,
		503: Recoverable,
	}
	for code, want := range cases {
		if got := CategoryForStatus(code); got != want {
			t.Fatalf("status %d: got %s want %s", code, got, want)
		}
	}
}

func TestIsIrrecoverable_Wrapped(t *testing.T) {
	base := NewHTTPError(404, errors.New("not found"))
	if !IsIrrecoverable(fmt.Errorf("op: %w", base)) {
		t.Fatalf("wrapped 404 must be irrecoverable")
	}
	if IsIrrecoverable(NewNetworkError("list", errors.New("reset"))) {
		t.Fatalf("network errors are recoverable")
	}
	if IsIrrecoverable(errors.New("plain")) {
		t.Fatalf("unclassified errors are not irrecoverable")
	}
}
