package ports

import (
	"context"

	"github.com/nitinkv/docvault/internal/core/domain"
)

// DocumentSearcher is the inbound contract for the search flow.
type DocumentSearcher interface {
	Build(category domain.Category, tags []domain.Tag, dates domain.DateRange, freeText string, page domain.Page) (domain.SearchQuery, error)
	Execute(ctx context.Context, query domain.SearchQuery, token string) ([]domain.DocumentSummary, error)
}

// DocumentSubmitter is the inbound contract for one submission form.
type DocumentSubmitter interface {
	Submit(ctx context.Context, form *domain.SubmissionForm, token string) error
	State() domain.SubmissionState
}

// TagLoader refreshes the session's known-tag set from the remote API.
type TagLoader interface {
	Load(ctx context.Context, term, token string) ([]domain.Tag, error)
}

// Authenticator is the inbound contract for the OTP login flow.
type Authenticator interface {
	RequestOTP(ctx context.Context, mobileNumber string) error
	VerifyOTP(ctx context.Context, mobileNumber, otp string) (string, error)
}
