// SPDX-License-Identifier: MIT
// Package: pipeline
//
// pipeline.go - the embed → reconstruct → compare orchestration.
//
// Run stages (strictly sequential, all-or-nothing):
//  1. augment:  AugmentedCloud = embed.Augment(cloud, spec, rng).
//  2. reduce:   ReconstructedCloud = reducer.Reduce(augmented, D, kind), D = cloud.Cols().
//  3. homology: diagrams of the ORIGINAL cloud.
//  4. homology: diagrams of the RECONSTRUCTED cloud, same maxdim.
//  5. verify:   shapes, degree counts, pair invariants, comparability.
//
// A failing stage aborts the run: nil Result, one stage sentinel in the chain,
// one error-level log line. Nothing is retried.

package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/alessimichele/PersHomEmbProj/cloud"
	"github.com/alessimichele/PersHomEmbProj/diagram"
	"github.com/alessimichele/PersHomEmbProj/embed"
	"github.com/alessimichele/PersHomEmbProj/homology"
	"github.com/alessimichele/PersHomEmbProj/reduce"
)

// DefaultMaxDim is the highest homology degree computed by the reference
// experiments (H0, H1, H2).
const DefaultMaxDim = 2

// Result holds everything one run produced. All fields are independent
// values owned by the caller.
type Result struct {
	// Original and Reconstructed hold maxdim+1 diagrams each, aligned by degree.
	Original      diagram.Set
	Reconstructed diagram.Set
	// Augmented is the N×(D+ExtraDims) cloud fed to the reducer.
	Augmented *cloud.PointCloud
	// Reconstruction is the N×D reducer output.
	Reconstruction *cloud.PointCloud

	Spec   embed.Spec
	Kind   reduce.Kind
	MaxDim int
}

// Diagrams returns the (original, reconstructed) pair of diagram sets.
func (r *Result) Diagrams() (original, reconstructed diagram.Set) {
	return r.Original, r.Reconstructed
}

// Pipeline wires a reducer and a homology engine. It holds no per-run state;
// concurrent Run calls are safe when the collaborators are.
type Pipeline struct {
	reducer reduce.Reducer
	engine  homology.Engine
	logger  zerolog.Logger
	metrics *Metrics
}

// New returns a Pipeline over the given collaborators.
// Returns ErrNilCollaborator if either is nil.
func New(reducer reduce.Reducer, engine homology.Engine, opts ...Option) (*Pipeline, error) {
	if reducer == nil || engine == nil {
		return nil, ErrNilCollaborator
	}
	p := &Pipeline{reducer: reducer, engine: engine, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.logger = p.logger.With().Str("component", "pipeline").Logger()

	return p, nil
}

// Run executes one embed → reconstruct → compare experiment on c.
//
// rng drives the augmentation noise only; it may be nil when spec.Noise is
// false. With the same inputs and an identically seeded rng, two runs return
// bit-identical clouds and diagrams.
//
// Errors (exactly one stage sentinel per failure):
//   - ErrInvalidSpec: nil cloud, maxdim < 0, or rejected spec.
//   - ErrReducer: the reducer failed (its error is wrapped unchanged).
//   - ErrDimensionMismatch: reconstruction is not N×D.
//   - ErrHomology: the engine failed or returned an invalid diagram set.
//
// Context cancellation surfaces wrapped in the sentinel of the stage that
// observed it.
func (p *Pipeline) Run(ctx context.Context, c *cloud.PointCloud, spec embed.Spec, kind reduce.Kind, maxdim int, rng *rand.Rand) (*Result, error) {
	logger := p.logger.With().Str("kind", kind.String()).Int("extra_dims", spec.ExtraDims).Bool("noise", spec.Noise).Int("maxdim", maxdim).Logger()

	res, stage, outcome, err := p.run(ctx, c, spec, kind, maxdim, rng)
	p.metrics.countRun(kind.String(), outcome)
	if err != nil {
		logger.Error().Err(err).Str("stage", stage).Msg("run failed")
		return nil, err
	}
	logger.Debug().
		Int("points", c.Rows()).
		Int("h0", len(res.Original[0])).
		Msg("run finished")

	return res, nil
}

// run returns the result or the failing stage, outcome label and error.
func (p *Pipeline) run(ctx context.Context, c *cloud.PointCloud, spec embed.Spec, kind reduce.Kind, maxdim int, rng *rand.Rand) (*Result, string, string, error) {
	if c == nil {
		return nil, stageAugment, outcomeInvalidSpec, fmt.Errorf("%w: %w", ErrInvalidSpec, cloud.ErrNilCloud)
	}
	if maxdim < 0 {
		return nil, stageAugment, outcomeInvalidSpec, fmt.Errorf("%w: maxdim=%d < 0", ErrInvalidSpec, maxdim)
	}

	// 1) Augment.
	start := time.Now()
	augmented, err := embed.Augment(c, spec, rng)
	if err != nil {
		return nil, stageAugment, outcomeInvalidSpec, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	p.metrics.observeStage(stageAugment, start)

	// 2) Reduce back to the original dimensionality.
	start = time.Now()
	reconstruction, err := p.reducer.Reduce(ctx, augmented, c.Cols(), kind)
	if err != nil {
		return nil, stageReduce, outcomeReducer, fmt.Errorf("%w: %w", ErrReducer, err)
	}
	if reconstruction == nil || reconstruction.Rows() != c.Rows() || reconstruction.Cols() != c.Cols() {
		return nil, stageReduce, outcomeDimensionMismatch, fmt.Errorf("%w: want %dx%d, got %s",
			ErrDimensionMismatch, c.Rows(), c.Cols(), shapeOf(reconstruction))
	}
	p.metrics.observeStage(stageReduce, start)

	// 3) + 4) Persistence of both clouds.
	original, err := p.diagrams(ctx, stageOriginal, c, maxdim)
	if err != nil {
		return nil, stageOriginal, outcomeHomology, err
	}
	reconstructed, err := p.diagrams(ctx, stageReconstructed, reconstruction, maxdim)
	if err != nil {
		return nil, stageReconstructed, outcomeHomology, err
	}

	// 5) Both sets must line up degree by degree.
	if err := diagram.Comparable(original, reconstructed); err != nil {
		return nil, stageReconstructed, outcomeHomology, fmt.Errorf("%w: %w", ErrHomology, err)
	}

	return &Result{
		Original:       original,
		Reconstructed:  reconstructed,
		Augmented:      augmented,
		Reconstruction: reconstruction,
		Spec:           spec,
		Kind:           kind,
		MaxDim:         maxdim,
	}, stageReconstructed, outcomeOK, nil
}

// diagrams runs the engine and checks the returned set's invariants.
func (p *Pipeline) diagrams(ctx context.Context, stage string, c *cloud.PointCloud, maxdim int) (diagram.Set, error) {
	start := time.Now()
	set, err := p.engine.Compute(ctx, c, maxdim)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHomology, stage, err)
	}
	if err := set.Validate(maxdim); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHomology, stage, err)
	}
	p.metrics.observeStage(stage, start)

	return set, nil
}

func shapeOf(c *cloud.PointCloud) string {
	if c == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", c.Rows(), c.Cols())
}
