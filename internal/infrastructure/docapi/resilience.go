package docapi

import (
	"context"
	"errors"
	"time"

	"github.com/nitinkv/docvault/internal/core/domain"
	"github.com/nitinkv/docvault/internal/infrastructure/resilience"
	"github.com/nitinkv/docvault/internal/observability/metrics"
)

// ResilientGateway decorates the raw client with retry, circuit breaking
// and call metrics. Submissions and OTP calls carry side effects, so
// they never retry automatically; the breaker still records their
// transport failures.
type ResilientGateway struct {
	next     *Client
	executor *resilience.Executor
	metrics  *metrics.ClientMetrics
	service  string
}

func NewResilientGateway(next *Client, executor *resilience.Executor, m *metrics.ClientMetrics, service string) *ResilientGateway {
	return &ResilientGateway{
		next:     next,
		executor: executor,
		metrics:  m,
		service:  service,
	}
}

func (g *ResilientGateway) SearchDocuments(ctx context.Context, query domain.SearchQuery, token string) ([]domain.DocumentSummary, error) {
	var results []domain.DocumentSummary
	err := g.observe(ctx, "search_documents", classifyReadError, func(ctx context.Context) error {
		var innerErr error
		results, innerErr = g.next.SearchDocuments(ctx, query, token)
		return innerErr
	})
	return results, err
}

func (g *ResilientGateway) SaveDocument(ctx context.Context, payload domain.UploadPayload, token string) error {
	return g.observe(ctx, "save_document", classifyWriteError, func(ctx context.Context) error {
		return g.next.SaveDocument(ctx, payload, token)
	})
}

func (g *ResilientGateway) FetchTags(ctx context.Context, term, token string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := g.observe(ctx, "fetch_tags", classifyReadError, func(ctx context.Context) error {
		var innerErr error
		tags, innerErr = g.next.FetchTags(ctx, term, token)
		return innerErr
	})
	return tags, err
}

func (g *ResilientGateway) GenerateOTP(ctx context.Context, mobileNumber string) error {
	return g.observe(ctx, "generate_otp", classifyWriteError, func(ctx context.Context) error {
		return g.next.GenerateOTP(ctx, mobileNumber)
	})
}

func (g *ResilientGateway) ValidateOTP(ctx context.Context, mobileNumber, otp string) (string, error) {
	var token string
	err := g.observe(ctx, "validate_otp", classifyWriteError, func(ctx context.Context) error {
		var innerErr error
		token, innerErr = g.next.ValidateOTP(ctx, mobileNumber, otp)
		return innerErr
	})
	return token, err
}

func (g *ResilientGateway) observe(
	ctx context.Context,
	operation string,
	classifier resilience.ErrorClassifier,
	fn func(context.Context) error,
) error {
	start := time.Now()
	if g.metrics != nil {
		g.metrics.StartCall()
	}

	err := g.executor.Execute(ctx, operation, fn, classifier)

	if g.metrics != nil {
		g.metrics.FinishCall(g.service, operation, outcomeOf(err), time.Since(start))
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case domain.IsKind(err, domain.ErrRejected):
		return "rejected"
	case domain.IsKind(err, domain.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}

// classifyReadError: idempotent reads may retry on transport trouble.
func classifyReadError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if domain.IsKind(err, domain.ErrRejected) ||
		domain.IsKind(err, domain.ErrValidation) ||
		domain.IsKind(err, domain.ErrUnauthorized) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if domain.IsKind(err, domain.ErrUnavailable) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}
	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}

// classifyWriteError: never retry, the request already changed state on
// the server side (or consumed its body).
func classifyWriteError(err error) resilience.ErrorClassification {
	class := classifyReadError(err)
	class.Retryable = false
	return class
}
