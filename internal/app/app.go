package app

import (
	"context"
	"log/slog"

	"EditorialGate/internal/config"
	"EditorialGate/internal/domain"
	"EditorialGate/internal/infrastructure/archive"
	"EditorialGate/internal/infrastructure/discovery"
	"EditorialGate/internal/infrastructure/fetch"
	"EditorialGate/internal/infrastructure/llm"
	"EditorialGate/internal/logging"
	"EditorialGate/internal/ports"
	"EditorialGate/internal/report"
	"EditorialGate/internal/usecase"
	"EditorialGate/internal/validation"
)

// Application wires configuration to the pipeline and owns the run lifecycle.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. The run clock is captured here,
// once, in the configured reference timezone.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	clock := domain.NewRunClock(cfg.Location())

	fetcher := fetch.New(nil, baseLogger.With("component", "fetcher"))
	archiveIndex := archive.New(cfg.Archive.CDXEndpoint, baseLogger.With("component", "archive"))

	validator := validation.New(fetcher, archiveIndex, clock, validation.Config{
		AllowedDomains:     cfg.Validation.AllowedDomains,
		DatePolicy:         cfg.Validation.DatePolicy,
		MinWords:           cfg.Validation.MinWords,
		MaxArchiveAgeHours: cfg.Archive.MaxAgeHours,
	}, baseLogger.With("component", "validator"))

	var source ports.URLSource
	if len(cfg.Discovery.Feeds) > 0 {
		source = discovery.NewSource(cfg.Discovery.Feeds, cfg.Discovery.MaxLinks, nil,
			baseLogger.With("component", "discovery"))
	}

	var drafter ports.Drafter
	if cfg.OpenAI.APIKey != "" {
		d, err := llm.NewDrafter(cfg.OpenAI)
		if err != nil {
			baseLogger.Warn("drafter disabled", "error", err)
		} else {
			drafter = d
		}
	} else {
		baseLogger.Info("no openai api key, editorial drafting disabled")
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Validator: validator,
		Gate: validation.Gate{
			MinValidated:    cfg.Gate.MinValidated,
			MinFingerprints: cfg.Gate.MinFingerprints,
		},
		Drafter: drafter,
		Reports: report.NewWriter(cfg.Output.Dir),
		Clock:   clock,
		Logger:  baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Run performs a single gatekeeping pass over the supplied candidate URLs;
// with none supplied, candidates come from feed discovery.
func (a *Application) Run(ctx context.Context, urls []string) error {
	result, err := a.pipeline.Run(ctx, urls)
	if err != nil {
		return err
	}

	if result.Passed {
		a.logger.Info("gate passed", "validated", len(result.Validated))
	} else {
		a.logger.Info("gate failed", "rejected", len(result.Rejected))
	}
	return nil
}
