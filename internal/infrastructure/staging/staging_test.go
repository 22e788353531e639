package staging

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestStageOpenDiscardLifecycle(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	pending, err := store.Stage(ctx, "report.pdf", "application/pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if pending.Name != "report.pdf" || pending.MimeType != "application/pdf" {
		t.Fatalf("unexpected pending file %+v", pending)
	}

	body, err := store.Open(ctx, pending)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	raw, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "pdf-bytes" {
		t.Fatalf("unexpected content %q", raw)
	}

	if err := store.Discard(ctx, pending); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := store.Open(ctx, pending); err == nil {
		t.Fatalf("expected open to fail after discard")
	}
	// Discarding twice is fine.
	if err := store.Discard(ctx, pending); err != nil {
		t.Fatalf("second discard: %v", err)
	}
}

func TestStageKeysAreUniquePerCall(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	first, err := store.Stage(ctx, "same.txt", "text/plain", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("stage first: %v", err)
	}
	second, err := store.Stage(ctx, "same.txt", "text/plain", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("stage second: %v", err)
	}
	if first.URI == second.URI {
		t.Fatalf("expected distinct staging keys, both %q", first.URI)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report final.pdf", "report_final.pdf"},
		{"../../etc/passwd", "passwd"},
		{"स्कैन.pdf", "_____.pdf"},
		{"", "document.bin"},
	}
	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
