package domain

import (
	"errors"
	"time"
)

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// SubmissionForm aggregates the state of one upload form. It is
// session-scoped: a failed attempt keeps every field for manual retry, a
// successful one clears them all at once.
type SubmissionForm struct {
	Category Category
	Tags     []Tag
	Remarks  string
	Date     time.Time
	Files    []PendingFile
	UserID   string
}

// Validate gates the network call: an incomplete category or an empty
// file list fails before any request is issued.
func (f *SubmissionForm) Validate() error {
	if !f.Category.IsComplete() {
		return WrapError(ErrValidation, "submission",
			errors.New("major and minor category are required"))
	}
	if len(f.Files) == 0 {
		return WrapError(ErrValidation, "submission",
			errors.New("at least one file is required"))
	}
	return nil
}

// Clear resets user input after a successful submission. All-or-nothing:
// partial failures never reach this point.
func (f *SubmissionForm) Clear() {
	f.Category = Category{}
	f.Tags = nil
	f.Remarks = ""
	f.Files = nil
}
