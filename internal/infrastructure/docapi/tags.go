package docapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nitinkv/docvault/internal/core/domain"
)

const tagsPath = "/documentTags"

func (c *Client) FetchTags(ctx context.Context, term, token string) ([]domain.Tag, error) {
	envelope, err := c.postJSON(ctx, tagsPath, token, map[string]string{"term": term}, "fetch tags")
	if err != nil {
		return nil, err
	}
	if !envelope.Status {
		return nil, rejectionError("fetch tags", envelope)
	}

	var tags []domain.Tag
	if err := json.Unmarshal(envelope.Data, &tags); err != nil {
		return nil, domain.WrapError(domain.ErrUnavailable, "fetch tags",
			fmt.Errorf("decode tags: %w", err))
	}
	return tags, nil
}
