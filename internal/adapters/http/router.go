// Package httpadapter exposes the document-management flows over HTTP.
// Every handler is stateless: filter state arrives fully in the request,
// the bearer token travels in the "token" header.
package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/nitinkv/docvault/internal/core/ports"
	"github.com/nitinkv/docvault/internal/observability/metrics"
)

const tokenHeader = "token"

type Router struct {
	searcher     ports.DocumentSearcher
	newSubmitter func() ports.DocumentSubmitter
	tagLoader    ports.TagLoader
	auth         ports.Authenticator
	stager       ports.FileStager

	userID string
	logger *zap.Logger

	gatewayMetrics *metrics.GatewayMetrics
	metricsHandler http.Handler
	corsOrigins    []string
}

func NewRouter(
	searcher ports.DocumentSearcher,
	newSubmitter func() ports.DocumentSubmitter,
	tagLoader ports.TagLoader,
	auth ports.Authenticator,
	stager ports.FileStager,
	userID string,
	logger *zap.Logger,
	gatewayMetrics *metrics.GatewayMetrics,
	metricsHandler http.Handler,
	corsOrigins []string,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		searcher:       searcher,
		newSubmitter:   newSubmitter,
		tagLoader:      tagLoader,
		auth:           auth,
		stager:         stager,
		userID:         userID,
		logger:         logger,
		gatewayMetrics: gatewayMetrics,
		metricsHandler: metricsHandler,
		corsOrigins:    corsOrigins,
	}
}

func (rt *Router) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", rt.healthz).Methods(http.MethodGet)
	if rt.metricsHandler != nil {
		r.Handle("/metrics", rt.metricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/otp", rt.requestOTP).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", rt.verifyOTP).Methods(http.MethodPost)
	api.HandleFunc("/categories", rt.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/tags", rt.loadTags).Methods(http.MethodPost)
	api.HandleFunc("/documents/search", rt.searchDocuments).Methods(http.MethodPost)
	api.HandleFunc("/documents", rt.uploadDocument).Methods(http.MethodPost)

	var handler http.Handler = r
	if rt.gatewayMetrics != nil {
		handler = rt.gatewayMetrics.Middleware("api", handler)
	}
	handler = accessLogMiddleware(rt.logger, handler)
	handler = requestIDMiddleware(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: rt.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", tokenHeader},
	})
	return c.Handler(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
