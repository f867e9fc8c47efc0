// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/alessimichele/PersHomEmbProj/embed"
	"github.com/alessimichele/PersHomEmbProj/homology"
	"github.com/alessimichele/PersHomEmbProj/pipeline"
	"github.com/alessimichele/PersHomEmbProj/reduce"
	"github.com/alessimichele/PersHomEmbProj/shapes"
)

func ExamplePipeline_Run() {
	circle, _ := shapes.NewCircle(shapes.WithSeed(1)).Generate(40)

	p, _ := pipeline.New(reduce.NewSpectral(), homology.NewRips())
	res, err := p.Run(context.Background(), circle,
		embed.Spec{ExtraDims: 8, Noise: true}, reduce.Linear, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	original, reconstructed := res.Diagrams()
	fmt.Println(res.Augmented.Cols(), res.Reconstruction.Cols())
	fmt.Println(len(original), len(reconstructed))
	// Output:
	// 10 2
	// 2 2
}
