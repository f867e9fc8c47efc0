// SPDX-License-Identifier: MIT
// Package: experiment
//
// runner.go - bounded fan-out of independent pipeline runs.
//
// Contract:
//   - Experiments are validated up front; one invalid entry rejects the batch.
//   - Each experiment owns a fresh *rand.Rand seeded with its Seed; the cloud
//     is sampled first, then the same stream drives the noise. Results do not
//     depend on scheduling or Concurrency.
//   - Outcomes are returned in input order.
//   - A configured Sink receives every successful run before Run returns.

package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alessimichele/PersHomEmbProj/pipeline"
	"github.com/alessimichele/PersHomEmbProj/shapes"
	"github.com/alessimichele/PersHomEmbProj/store"
)

// Sink persists finished runs. *store.SQLiteStore implements it.
type Sink interface {
	Save(ctx context.Context, rec store.Record) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithSink stores every successful run in s.
func WithSink(s Sink) Option {
	return func(r *Runner) {
		r.sink = s
	}
}

// WithLogger sets the runner's logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// Runner executes batches of experiments through one Pipeline.
type Runner struct {
	pipe   *pipeline.Pipeline
	cfg    Config
	sink   Sink
	logger zerolog.Logger
	now    func() time.Time
}

// NewRunner validates cfg and returns a Runner over p.
func NewRunner(p *pipeline.Pipeline, cfg Config, opts ...Option) (*Runner, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil pipeline", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{pipe: p, cfg: cfg, logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.With().Str("component", "experiment").Logger()

	return r, nil
}

// Run executes exps and returns one Outcome per experiment, in order.
//
// With FailFast the first failure cancels the remaining runs and is returned
// together with the outcomes gathered so far. Otherwise the returned error is
// non-nil only for batch-level problems (invalid experiments, ctx).
func (r *Runner) Run(ctx context.Context, exps []Experiment) ([]Outcome, error) {
	for i, e := range exps {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("experiment %d (%s): %w", i, e.Name, err)
		}
	}

	outcomes := make([]Outcome, len(exps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i := range exps {
		i := i
		g.Go(func() error {
			out := r.runOne(gctx, exps[i])
			outcomes[i] = out
			if out.Err != nil && r.cfg.FailFast {
				return fmt.Errorf("experiment %d (%s): %w", i, exps[i].Name, out.Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

func (r *Runner) runOne(ctx context.Context, e Experiment) Outcome {
	out := Outcome{ID: uuid.New(), Experiment: e}
	logger := r.logger.With().Str("id", out.ID.String()).Str("name", e.Name).Logger()

	rng := rand.New(rand.NewSource(e.Seed))
	src, err := shapes.ByName(e.Shape, shapes.WithRand(rng))
	if err != nil {
		out.Err = err
		return out
	}
	pc, err := src.Generate(e.Points)
	if err != nil {
		out.Err = err
		return out
	}
	res, err := r.pipe.Run(ctx, pc, e.Spec, e.Kind, e.MaxDim, rng)
	if err != nil {
		logger.Warn().Err(err).Msg("experiment failed")
		out.Err = err
		return out
	}

	if r.sink != nil {
		rec := store.Record{
			ID:            out.ID,
			Name:          e.Name,
			Shape:         e.Shape,
			Points:        e.Points,
			ExtraDims:     e.Spec.ExtraDims,
			Noise:         e.Spec.Noise,
			Kind:          e.Kind,
			MaxDim:        e.MaxDim,
			Seed:          e.Seed,
			Original:      res.Original,
			Reconstructed: res.Reconstructed,
			CreatedAt:     r.now().UTC(),
		}
		if err := r.sink.Save(ctx, rec); err != nil {
			out.Err = fmt.Errorf("%w: %w", ErrSink, err)
			return out
		}
	}
	out.Result = res
	logger.Debug().Msg("experiment finished")

	return out
}
