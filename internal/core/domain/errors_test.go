package domain

import (
	"errors"
	"testing"
)

func TestWrapErrorKeepsKindAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(ErrUnavailable, "search documents", cause)

	if !IsKind(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable kind, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to survive wrapping")
	}
}

func TestWrapErrorNilPassthrough(t *testing.T) {
	if err := WrapError(ErrValidation, "noop", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestRejectionMessage(t *testing.T) {
	err := WrapError(ErrRejected, "search documents", NewRejection("term not found"))
	if got := RejectionMessage(err, "fallback"); got != "term not found" {
		t.Fatalf("expected server message, got %q", got)
	}

	plain := WrapError(ErrUnavailable, "search documents", errors.New("boom"))
	if got := RejectionMessage(plain, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for non-rejection, got %q", got)
	}
}
