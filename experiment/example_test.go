// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"fmt"

	"github.com/alessimichele/PersHomEmbProj/embed"
	"github.com/alessimichele/PersHomEmbProj/experiment"
	"github.com/alessimichele/PersHomEmbProj/homology"
	"github.com/alessimichele/PersHomEmbProj/pipeline"
	"github.com/alessimichele/PersHomEmbProj/reduce"
	"github.com/alessimichele/PersHomEmbProj/shapes"
)

func ExampleRunner_Run() {
	p, err := pipeline.New(reduce.NewSpectral(), homology.NewRips())
	if err != nil {
		panic(err)
	}
	r, err := experiment.NewRunner(p, experiment.Config{Concurrency: 2})
	if err != nil {
		panic(err)
	}

	base := experiment.DefaultExperiment()
	base.Points, base.MaxDim, base.Seed = 20, 1, 42
	exps := experiment.Grid(base,
		[]string{shapes.NameCircle},
		[]reduce.Kind{reduce.Linear, reduce.Kernel},
		[]embed.Spec{{ExtraDims: 4, Noise: true}},
	)

	out, err := r.Run(context.Background(), exps)
	if err != nil {
		panic(err)
	}
	for _, o := range out {
		fmt.Println(o.Experiment.Name, o.Err == nil, o.Result.Reconstruction.Cols())
	}
	// Output:
	// circle-linear-4-noise true 2
	// circle-kernel-4-noise true 2
}
