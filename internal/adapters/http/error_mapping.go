package httpadapter

import (
	"net/http"

	"github.com/nitinkv/docvault/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrValidation):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict
	case domain.IsKind(err, domain.ErrRejected):
		return http.StatusBadGateway
	case domain.IsKind(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
