// Package app sequences the chart pipeline: load, normalize, enrich, filter,
// then build and render the two chart documents.
package app

import (
	"context"
	"time"

	"healthcharts/adapters/tabular"
	"healthcharts/adapters/vegahtml"
	"healthcharts/domain/core"
	"healthcharts/domain/table"
	"healthcharts/internal"
	"healthcharts/internal/charts"
	"healthcharts/internal/config"
	"healthcharts/internal/errors"
	"healthcharts/internal/normalizer"
	"healthcharts/internal/profiling"
)

// Pipeline runs one end-to-end chart generation pass
type Pipeline struct {
	cfg    *config.Config
	logger *internal.Logger
	runID  core.RunID
}

// New creates a pipeline for the given configuration
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: internal.DefaultLogger,
		runID:  core.NewRunID(),
	}
}

// Run executes the pipeline. Row-level coercion and lookup failures never
// escalate; a missing input file, a missing required column, or an empty
// chart input aborts with a structured error.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("[Pipeline] run %s: loading %s", p.runID, p.cfg.Paths.InputFile)

	t, err := tabular.NewDataReader(p.cfg.Paths.InputFile).Load()
	if err != nil {
		return errors.Wrap(err, "load stage failed")
	}
	p.logger.Info("[Pipeline] loaded %d rows, %d columns", t.NumRows(), len(t.Columns))

	t = normalizer.New().Normalize(t)
	profiling.LogSummaries(p.logger, profiling.Summarize(t))

	t = EnrichContinent(t)
	t = FilterBothSexes(t)
	p.logger.Info("[Pipeline] %d aggregate rows after gender filter", t.NumRows())

	if err := p.buildScatter(ctx, t); err != nil {
		return err
	}
	if err := p.buildBubble(ctx, t); err != nil {
		return err
	}

	p.logger.Info("[Pipeline] run %s complete", p.runID)
	return nil
}

func (p *Pipeline) buildScatter(ctx context.Context, t *table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spec, err := charts.NewScatterBuilder(p.cfg.Charts.LoessBandwidth).Build(t)
	if err != nil {
		return errors.Wrap(err, "scatter chart failed")
	}
	p.attachRunMeta(spec)

	renderer := vegahtml.NewRenderer(vegahtml.Options{MaxRows: p.cfg.Render.MaxRows})
	if err := renderer.Render(spec, p.cfg.Paths.ScatterFile); err != nil {
		return errors.Wrap(err, "scatter chart render failed")
	}
	return nil
}

func (p *Pipeline) buildBubble(ctx context.Context, t *table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spec, err := charts.NewBubbleBuilder().Build(t)
	if err != nil {
		return errors.Wrap(err, "bubble chart failed")
	}
	p.attachRunMeta(spec)

	renderer := vegahtml.NewRenderer(vegahtml.Options{MaxRows: p.cfg.Render.MaxRows})
	if err := renderer.Render(spec, p.cfg.Paths.BubbleFile); err != nil {
		return errors.Wrap(err, "bubble chart render failed")
	}
	return nil
}

// attachRunMeta stamps the spec with this run's identity
func (p *Pipeline) attachRunMeta(spec *charts.Spec) {
	spec.Usermeta = map[string]interface{}{
		"run_id":       p.runID.String(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}
}
