package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrRejected           = errors.New("rejected by server")
	ErrUnavailable        = errors.New("service unavailable")
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

type rejection struct {
	message string
}

func (r *rejection) Error() string {
	return r.message
}

// NewRejection builds the leaf error carried inside an ErrRejected chain.
func NewRejection(message string) error {
	return &rejection{message: message}
}

// RejectionMessage extracts the server-supplied message from an
// ErrRejected chain, or returns the fallback.
func RejectionMessage(err error, fallback string) string {
	if err == nil || !IsKind(err, ErrRejected) {
		return fallback
	}
	var rej *rejection
	if errors.As(err, &rej) && rej.message != "" {
		return rej.message
	}
	return fallback
}
