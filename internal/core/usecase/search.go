package usecase

import (
	"context"

	"github.com/nitinkv/docvault/internal/core/domain"
	"github.com/nitinkv/docvault/internal/core/ports"
)

// SearchDocumentsUseCase composes the current filter state into one
// search request and replaces the caller's result list with the outcome.
type SearchDocumentsUseCase struct {
	gateway ports.DocumentGateway
}

func NewSearchDocumentsUseCase(gateway ports.DocumentGateway) *SearchDocumentsUseCase {
	return &SearchDocumentsUseCase{gateway: gateway}
}

// Build assembles the wire query. Unset category labels and bounds become
// empty strings; tags keep their selection order; pagination defaults to
// the first 50 entries. An inverted date range fails here, before any
// network call.
func (uc *SearchDocumentsUseCase) Build(
	category domain.Category,
	tags []domain.Tag,
	dates domain.DateRange,
	freeText string,
	page domain.Page,
) (domain.SearchQuery, error) {
	if err := dates.Validate(); err != nil {
		return domain.SearchQuery{}, err
	}

	if page.Start < 0 {
		page.Start = 0
	}
	if page.Length <= 0 {
		page.Length = domain.DefaultPageLength
	}

	refs := make([]domain.TagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, domain.TagRef{TagName: tag.Label})
	}

	from, to := dates.QueryBounds()
	return domain.SearchQuery{
		MajorHead:  category.MajorLabel,
		MinorHead:  category.MinorLabel,
		FromDate:   from,
		ToDate:     to,
		Tags:       refs,
		UploadedBy: "",
		Start:      page.Start,
		Length:     page.Length,
		FilterID:   "",
		Search:     domain.SearchText{Value: freeText},
	}, nil
}

// Execute issues the search. The returned slice is never nil: decoded
// summaries on success, empty on any failure. A server rejection also
// surfaces as an ErrRejected error so "no results" and "failed" stay
// distinguishable.
func (uc *SearchDocumentsUseCase) Execute(
	ctx context.Context,
	query domain.SearchQuery,
	token string,
) ([]domain.DocumentSummary, error) {
	results, err := uc.gateway.SearchDocuments(ctx, query, token)
	if err != nil {
		return []domain.DocumentSummary{}, err
	}
	if results == nil {
		results = []domain.DocumentSummary{}
	}
	return results, nil
}
