package usecase

import (
	"context"
	"strings"

	"github.com/nitinkv/docvault/internal/core/domain"
	"github.com/nitinkv/docvault/internal/core/ports"
)

// LoadTagsUseCase fetches the known-tag universe for a session. The
// result feeds TagSet.LoadKnownTags and never touches the selection.
type LoadTagsUseCase struct {
	gateway ports.DocumentGateway
}

func NewLoadTagsUseCase(gateway ports.DocumentGateway) *LoadTagsUseCase {
	return &LoadTagsUseCase{gateway: gateway}
}

func (uc *LoadTagsUseCase) Load(ctx context.Context, term, token string) ([]domain.Tag, error) {
	tags, err := uc.gateway.FetchTags(ctx, strings.TrimSpace(term), token)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}
