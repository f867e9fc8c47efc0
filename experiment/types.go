// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"github.com/alessimichele/PersHomEmbProj/embed"
	"github.com/alessimichele/PersHomEmbProj/pipeline"
	"github.com/alessimichele/PersHomEmbProj/reduce"
	"github.com/alessimichele/PersHomEmbProj/shapes"
)

// Experiment describes one pipeline run as plain data.
//
// Fields:
//   - Name   - free-form label stored with the result.
//   - Shape  - a shapes registry name (shapes.Names()).
//   - Points - number of sampled points N (>= 1).
//   - Seed   - seeds the single RNG that drives both sampling and noise.
//   - Spec   - augmentation (extra dimensions, noise on/off).
//   - Kind   - reduce.Linear or reduce.Kernel.
//   - MaxDim - highest homology degree.
//
// Example:
//
//	exp := experiment.DefaultExperiment()
//	exp.Shape = shapes.NameTorus
//	exp.Kind = reduce.Kernel
type Experiment struct {
	Name   string
	Shape  string
	Points int
	Seed   int64
	Spec   embed.Spec
	Kind   reduce.Kind
	MaxDim int
}

// Reference experiment parameters.
const (
	DefaultPoints    = 100
	DefaultExtraDims = 20
	DefaultNoise     = true
)

// DefaultExperiment returns the reference run: a 100-point swiss roll lifted
// by 20 noisy dimensions and reconstructed with PCA, diagrams up to H2.
func DefaultExperiment() Experiment {
	return Experiment{
		Name:   "swiss_roll-linear",
		Shape:  shapes.NameSwissRoll,
		Points: DefaultPoints,
		Spec:   embed.Spec{ExtraDims: DefaultExtraDims, Noise: DefaultNoise},
		Kind:   reduce.Linear,
		MaxDim: pipeline.DefaultMaxDim,
	}
}

// Validate checks every field without running anything.
func (e Experiment) Validate() error {
	if _, err := shapes.ByName(e.Shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}
	if e.Points < 1 {
		return fmt.Errorf("%w: points=%d < 1", ErrInvalidExperiment, e.Points)
	}
	if err := e.Spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %w: %v", ErrInvalidExperiment, reduce.ErrUnknownKind, e.Kind)
	}
	if e.MaxDim < 0 {
		return fmt.Errorf("%w: maxdim=%d < 0", ErrInvalidExperiment, e.MaxDim)
	}

	return nil
}

// Grid expands base into one experiment per (shape, kind, spec) combination,
// in that nesting order. Names are "<shape>-<kind>-<extra>[-noise]".
func Grid(base Experiment, shapeNames []string, kinds []reduce.Kind, specs []embed.Spec) []Experiment {
	out := make([]Experiment, 0, len(shapeNames)*len(kinds)*len(specs))
	for _, s := range shapeNames {
		for _, k := range kinds {
			for _, sp := range specs {
				e := base
				e.Shape, e.Kind, e.Spec = s, k, sp
				e.Name = fmt.Sprintf("%s-%s-%d", s, k, sp.ExtraDims)
				if sp.Noise {
					e.Name += "-noise"
				}
				out = append(out, e)
			}
		}
	}

	return out
}

// Config controls a Runner.
//
// Fields:
//   - Concurrency - maximum experiments in flight (>= 1).
//   - FailFast    - stop at the first failure and return it; otherwise every
//     experiment runs and failures are reported per Outcome.
type Config struct {
	Concurrency int
	FailFast    bool
}

// DefaultConfig runs one experiment per CPU and collects all failures.
func DefaultConfig() Config {
	return Config{Concurrency: runtime.NumCPU(), FailFast: false}
}

// Validate reports ErrInvalidConfig for Concurrency < 1.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency=%d < 1", ErrInvalidConfig, c.Concurrency)
	}

	return nil
}

// Outcome is the result of one experiment. Exactly one of Result and Err is set.
type Outcome struct {
	ID         uuid.UUID
	Experiment Experiment
	Result     *pipeline.Result
	Err        error
}
