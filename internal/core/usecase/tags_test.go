package usecase

import (
	"context"
	"testing"

	"github.com/nitinkv/docvault/internal/core/domain"
)

func TestLoadTrimsTermAndNormalizesNil(t *testing.T) {
	gw := &stubGateway{tags: nil}
	uc := NewLoadTagsUseCase(gw)

	tags, err := uc.Load(context.Background(), "  inv  ", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags == nil {
		t.Fatalf("tag slice must never be nil")
	}
}

func TestLoadReturnsGatewayTags(t *testing.T) {
	gw := &stubGateway{tags: []domain.Tag{{ID: "1", Label: "invoice"}}}
	uc := NewLoadTagsUseCase(gw)

	tags, err := uc.Load(context.Background(), "inv", "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Label != "invoice" {
		t.Fatalf("unexpected tags %+v", tags)
	}
}
