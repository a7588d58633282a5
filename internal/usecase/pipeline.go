package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"EditorialGate/internal/domain"
	"EditorialGate/internal/ports"
	"EditorialGate/internal/report"
	"EditorialGate/internal/validation"
)

// PipelineDeps wires all driven adapters into the gatekeeping pipeline.
type PipelineDeps struct {
	Source    ports.URLSource
	Validator *validation.Validator
	Gate      validation.Gate
	Drafter   ports.Drafter
	Reports   *report.Writer
	Clock     domain.RunClock
	Logger    *slog.Logger
}

// Pipeline implements one gatekeeping run: discover, validate, decide, emit.
type Pipeline struct {
	source    ports.URLSource
	validator *validation.Validator
	gate      validation.Gate
	drafter   ports.Drafter
	reports   *report.Writer
	clock     domain.RunClock
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:    deps.Source,
		validator: deps.Validator,
		gate:      deps.Gate,
		drafter:   deps.Drafter,
		reports:   deps.Reports,
		clock:     deps.Clock,
		logger:    deps.Logger,
	}
}

// Run executes one gatekeeping pass over the supplied URLs or, when none are
// given, over links discovered from the configured feeds. Every run terminates
// with exactly one GateResult; the only run-level failure short of an I/O
// error is an empty candidate list.
func (p *Pipeline) Run(ctx context.Context, urls []string) (domain.GateResult, error) {
	if len(urls) == 0 && p.source != nil {
		discovered, err := p.source.TodayLinks(ctx, p.clock)
		if err != nil {
			return domain.GateResult{}, fmt.Errorf("discover links: %w", err)
		}
		p.info("links discovered", "count", len(discovered))
		urls = discovered
	}

	if len(urls) == 0 {
		return domain.GateResult{}, validation.ErrNoInput
	}

	outcomes := p.validator.ValidateAll(ctx, urls)
	result := p.gate.Decide(outcomes)
	p.info("gate decided", "passed", result.Passed,
		"validated", len(result.Validated), "rejected", len(result.Rejected))

	if result.Passed {
		if p.reports != nil {
			if err := p.reports.WriteLinks(result.Validated); err != nil {
				return result, fmt.Errorf("write links: %w", err)
			}
		}

		if p.drafter != nil {
			editorial, err := p.drafter.Draft(ctx, p.clock, result.Validated)
			if err != nil {
				return result, fmt.Errorf("draft editorial: %w", err)
			}
			if p.reports != nil {
				if err := p.reports.WriteEditorial(editorial); err != nil {
					return result, fmt.Errorf("write editorial: %w", err)
				}
			}
		}
	}

	if p.reports != nil {
		if err := p.reports.WriteSummary(result); err != nil {
			return result, fmt.Errorf("write summary: %w", err)
		}
	}

	return result, nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
