package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/nitinkv/docvault/internal/core/domain"
	"github.com/nitinkv/docvault/internal/core/ports"
)

// SubmitDocumentUseCase drives one submission form through
// validate → build → submit. Each form instance gets its own use case so
// the single-flight gate matches the form's lifetime.
type SubmitDocumentUseCase struct {
	gateway ports.DocumentGateway
	stager  ports.FileStager

	mu       sync.Mutex
	inFlight bool
	state    domain.SubmissionState
}

func NewSubmitDocumentUseCase(gateway ports.DocumentGateway, stager ports.FileStager) *SubmitDocumentUseCase {
	return &SubmitDocumentUseCase{
		gateway: gateway,
		stager:  stager,
		state:   domain.SubmissionIdle,
	}
}

func (uc *SubmitDocumentUseCase) State() domain.SubmissionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Submit runs one attempt. A second call while one is in flight is
// rejected. Validation failures block before any network call. On
// success the form is cleared and staged files discarded; on failure
// everything — including staged files — is preserved for manual retry.
func (uc *SubmitDocumentUseCase) Submit(ctx context.Context, form *domain.SubmissionForm, token string) error {
	uc.mu.Lock()
	if uc.inFlight {
		uc.mu.Unlock()
		return domain.WrapError(domain.ErrSubmissionInFlight, "submit document",
			errors.New("another submission is running for this form"))
	}
	uc.inFlight = true
	uc.state = domain.SubmissionValidating
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.inFlight = false
		uc.mu.Unlock()
	}()

	if err := form.Validate(); err != nil {
		uc.setState(domain.SubmissionIdle)
		return err
	}

	uc.setState(domain.SubmissionSubmitting)

	payload, closeFiles, err := uc.buildPayload(ctx, form)
	if err != nil {
		uc.setState(domain.SubmissionFailed)
		return err
	}
	defer closeFiles()

	if err := uc.gateway.SaveDocument(ctx, payload, token); err != nil {
		uc.setState(domain.SubmissionFailed)
		return err
	}

	uc.setState(domain.SubmissionSucceeded)
	uc.clear(ctx, form)
	return nil
}

// buildPayload flattens the form into the multipart shape: scalar fields,
// one indexed tag entry per selected tag, one part per staged file.
func (uc *SubmitDocumentUseCase) buildPayload(ctx context.Context, form *domain.SubmissionForm) (domain.UploadPayload, func(), error) {
	refs := make([]domain.TagRef, 0, len(form.Tags))
	for _, tag := range form.Tags {
		refs = append(refs, domain.TagRef{TagName: tag.Label})
	}

	var closers []io.Closer
	closeAll := func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}

	parts := make([]domain.UploadPart, 0, len(form.Files))
	for _, file := range form.Files {
		body, err := uc.stager.Open(ctx, file)
		if err != nil {
			closeAll()
			return domain.UploadPayload{}, nil, fmt.Errorf("open staged file %s: %w", file.Name, err)
		}
		closers = append(closers, body)
		parts = append(parts, domain.UploadPart{
			Name:     file.Name,
			MimeType: file.MimeType,
			Body:     body,
		})
	}

	return domain.UploadPayload{
		MajorHead:    form.Category.MajorLabel,
		MinorHead:    form.Category.MinorLabel,
		DocumentDate: form.Date.UTC().Format(time.RFC3339),
		Remarks:      form.Remarks,
		UserID:       form.UserID,
		Tags:         refs,
		Files:        parts,
	}, closeAll, nil
}

func (uc *SubmitDocumentUseCase) clear(ctx context.Context, form *domain.SubmissionForm) {
	for _, file := range form.Files {
		_ = uc.stager.Discard(ctx, file)
	}
	form.Clear()
}

func (uc *SubmitDocumentUseCase) setState(state domain.SubmissionState) {
	uc.mu.Lock()
	uc.state = state
	uc.mu.Unlock()
}
