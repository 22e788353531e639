package bootstrap

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/nitinkv/docvault/internal/config"
	"github.com/nitinkv/docvault/internal/core/ports"
	"github.com/nitinkv/docvault/internal/core/usecase"
	"github.com/nitinkv/docvault/internal/infrastructure/docapi"
	"github.com/nitinkv/docvault/internal/infrastructure/resilience"
	"github.com/nitinkv/docvault/internal/infrastructure/staging"
	"github.com/nitinkv/docvault/internal/infrastructure/tokenstore"
	"github.com/nitinkv/docvault/internal/observability/logging"
	"github.com/nitinkv/docvault/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *zap.Logger

	Tokens ports.TokenStore
	Stager ports.FileStager

	SearchUC  ports.DocumentSearcher
	TagsUC    ports.TagLoader
	LoginUC   ports.Authenticator
	Submitter func() ports.DocumentSubmitter

	GatewayMetrics *metrics.GatewayMetrics
	MetricsHandler http.Handler
}

func New(service string, cfg config.Config) (*App, error) {
	logger, err := logging.New(service, cfg.LogLevel, cfg.LogMode, cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tokens, err := tokenstore.New(cfg.TokenStorePath, cfg.TokenStorePassphrase)
	if err != nil {
		return nil, fmt.Errorf("init token store: %w", err)
	}

	stager, err := staging.New(cfg.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("init staging store: %w", err)
	}

	clientMetrics := metrics.NewClientMetrics(service)
	gatewayMetrics := metrics.NewGatewayMetrics(clientMetrics, service)

	resilienceCfg := resilience.DefaultConfig()
	resilienceCfg.RetryMaxAttempts = cfg.RetryMaxAttempts
	resilienceCfg.BreakerEnabled = cfg.BreakerEnabled
	executor := resilience.NewExecutor(resilienceCfg, logger)

	client := docapi.New(cfg.RemoteBaseURL, cfg.RemoteRPS, logger)
	gateway := docapi.NewResilientGateway(client, executor, clientMetrics, service)

	return &App{
		Config: cfg,
		Logger: logger,

		Tokens: tokens,
		Stager: stager,

		SearchUC: usecase.NewSearchDocumentsUseCase(gateway),
		TagsUC:   usecase.NewLoadTagsUseCase(gateway),
		LoginUC:  usecase.NewLoginUseCase(gateway, tokens),
		Submitter: func() ports.DocumentSubmitter {
			return usecase.NewSubmitDocumentUseCase(gateway, stager)
		},

		GatewayMetrics: gatewayMetrics,
		MetricsHandler: clientMetrics.Handler(),
	}, nil
}

func (a *App) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
