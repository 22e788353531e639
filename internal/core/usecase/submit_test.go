package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/nitinkv/docvault/internal/core/domain"
)

type stubStager struct {
	mu        sync.Mutex
	contents  map[string][]byte
	openErr   error
	discarded []string
}

func newStubStager(contents map[string][]byte) *stubStager {
	if contents == nil {
		contents = map[string][]byte{}
	}
	return &stubStager{contents: contents}
}

func (s *stubStager) Stage(_ context.Context, name, mimeType string, data io.Reader) (domain.PendingFile, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return domain.PendingFile{}, err
	}
	s.mu.Lock()
	s.contents[name] = raw
	s.mu.Unlock()
	return domain.PendingFile{URI: name, Name: name, MimeType: mimeType}, nil
}

func (s *stubStager) Open(_ context.Context, file domain.PendingFile) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.mu.Lock()
	raw, ok := s.contents[file.URI]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("not staged: %s", file.URI)
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

func (s *stubStager) Discard(_ context.Context, file domain.PendingFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contents, file.URI)
	s.discarded = append(s.discarded, file.URI)
	return nil
}

func validForm() *domain.SubmissionForm {
	return &domain.SubmissionForm{
		Category: domain.Category{MajorLabel: "Professional", MinorLabel: "Accounts"},
		Tags:     []domain.Tag{{ID: "gst", Label: "gst"}},
		Remarks:  "march filing",
		Date:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Files:    []domain.PendingFile{{URI: "return.pdf", Name: "return.pdf", MimeType: "application/pdf"}},
		UserID:   "nitin",
	}
}

func TestSubmitValidationFailureBlocksNetworkCall(t *testing.T) {
	gw := &stubGateway{}
	uc := NewSubmitDocumentUseCase(gw, newStubStager(nil))

	form := validForm()
	form.Files = nil

	err := uc.Submit(context.Background(), form, "tok")
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if gw.saveCalls != 0 {
		t.Fatalf("gateway must not be called on validation failure")
	}
	if got := uc.State(); got != domain.SubmissionIdle {
		t.Fatalf("expected idle state, got %s", got)
	}
}

func TestSubmitSuccessClearsFormAndDiscardsFiles(t *testing.T) {
	gw := &stubGateway{}
	stager := newStubStager(map[string][]byte{"return.pdf": []byte("pdf")})
	uc := NewSubmitDocumentUseCase(gw, stager)

	form := validForm()
	if err := uc.Submit(context.Background(), form, "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gw.saveCalls != 1 {
		t.Fatalf("expected one save call, got %d", gw.saveCalls)
	}
	if got := uc.State(); got != domain.SubmissionSucceeded {
		t.Fatalf("expected succeeded state, got %s", got)
	}
	if len(form.Files) != 0 || len(form.Tags) != 0 || form.Remarks != "" || form.Category.IsComplete() {
		t.Fatalf("form must be cleared after success, got %+v", form)
	}
	if len(stager.discarded) != 1 || stager.discarded[0] != "return.pdf" {
		t.Fatalf("staged file must be discarded, got %v", stager.discarded)
	}
}

func TestSubmitFailureRetainsForm(t *testing.T) {
	gw := &stubGateway{
		saveErr: domain.WrapError(domain.ErrUnavailable, "save document", errors.New("status 502")),
	}
	stager := newStubStager(map[string][]byte{"return.pdf": []byte("pdf")})
	uc := NewSubmitDocumentUseCase(gw, stager)

	form := validForm()
	err := uc.Submit(context.Background(), form, "tok")
	if !domain.IsKind(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if got := uc.State(); got != domain.SubmissionFailed {
		t.Fatalf("expected failed state, got %s", got)
	}
	if len(form.Files) != 1 || form.Remarks == "" {
		t.Fatalf("form must be retained for retry, got %+v", form)
	}
	if len(stager.discarded) != 0 {
		t.Fatalf("staged files must survive a failed attempt")
	}
}

func TestSubmitFailsWhenStagedFileMissing(t *testing.T) {
	gw := &stubGateway{}
	uc := NewSubmitDocumentUseCase(gw, newStubStager(nil))

	err := uc.Submit(context.Background(), validForm(), "tok")
	if err == nil {
		t.Fatalf("expected error for missing staged file")
	}
	if gw.saveCalls != 0 {
		t.Fatalf("gateway must not be called when payload cannot be built")
	}
	if got := uc.State(); got != domain.SubmissionFailed {
		t.Fatalf("expected failed state, got %s", got)
	}
}

type blockingGateway struct {
	stubGateway
	entered chan struct{}
	release chan struct{}
}

func (b *blockingGateway) SaveDocument(ctx context.Context, payload domain.UploadPayload, token string) error {
	close(b.entered)
	<-b.release
	return b.stubGateway.SaveDocument(ctx, payload, token)
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	gw := &blockingGateway{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	stager := newStubStager(map[string][]byte{"return.pdf": []byte("pdf")})
	uc := NewSubmitDocumentUseCase(gw, stager)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- uc.Submit(context.Background(), validForm(), "tok")
	}()

	<-gw.entered
	err := uc.Submit(context.Background(), validForm(), "tok")
	if !domain.IsKind(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(gw.release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submission must succeed, got %v", err)
	}
	if gw.saveCalls != 1 {
		t.Fatalf("expected exactly one save call, got %d", gw.saveCalls)
	}
}
