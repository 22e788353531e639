package tokenstore

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	store, err := New(path, "passphrase")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save("bearer-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "bearer-abc" {
		t.Fatalf("expected token back, got %q", got)
	}
}

func TestLoadWithoutTokenReturnsEmpty(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "token.bin"), "passphrase")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestLoadFailsWithWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	store, err := New(path, "correct")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Save("bearer-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}

	other, err := New(path, "wrong")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := other.Load(); err == nil {
		t.Fatalf("expected decrypt failure with wrong passphrase")
	}
}

func TestClearForgetsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	store, err := New(path, "passphrase")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Save("bearer-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty token after clear, got %q", got)
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestNewRequiresPathAndPassphrase(t *testing.T) {
	if _, err := New("", "x"); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := New(filepath.Join(t.TempDir(), "t.bin"), ""); err == nil {
		t.Fatalf("expected error for empty passphrase")
	}
}
