package docapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nitinkv/docvault/internal/core/domain"
)

const searchPath = "/searchDocumentEntry"

func (c *Client) SearchDocuments(ctx context.Context, query domain.SearchQuery, token string) ([]domain.DocumentSummary, error) {
	envelope, err := c.postJSON(ctx, searchPath, token, query, "search documents")
	if err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, rejectionError("search documents", envelope)
	}

	var summaries []domain.DocumentSummary
	if err := json.Unmarshal(envelope.Data, &summaries); err != nil {
		return nil, domain.WrapError(domain.ErrUnavailable, "search documents",
			fmt.Errorf("decode summaries: %w", err))
	}
	return summaries, nil
}
