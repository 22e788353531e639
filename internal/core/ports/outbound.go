package ports

import (
	"context"
	"io"

	"github.com/nitinkv/docvault/internal/core/domain"
)

// DocumentGateway is the outbound contract for the remote
// document-management API. The token travels per call; an empty string
// means unauthenticated.
type DocumentGateway interface {
	SearchDocuments(ctx context.Context, query domain.SearchQuery, token string) ([]domain.DocumentSummary, error)
	SaveDocument(ctx context.Context, payload domain.UploadPayload, token string) error
	FetchTags(ctx context.Context, term, token string) ([]domain.Tag, error)
}

// OTPGateway is the outbound contract for the external OTP collaborator.
type OTPGateway interface {
	GenerateOTP(ctx context.Context, mobileNumber string) error
	ValidateOTP(ctx context.Context, mobileNumber, otp string) (string, error)
}

// TokenStore keeps the bearer token, the only durable state this module
// owns. Load returns an empty string when no token is stored.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}

// FileStager spools picked files between pick and submit.
type FileStager interface {
	Stage(ctx context.Context, name, mimeType string, data io.Reader) (domain.PendingFile, error)
	Open(ctx context.Context, file domain.PendingFile) (io.ReadCloser, error)
	Discard(ctx context.Context, file domain.PendingFile) error
}
