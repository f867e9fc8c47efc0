// Package pershomembproj studies whether the persistent homology of a small
// point cloud survives a round trip through a higher-dimensional space.
//
// 🚀 What does it do?
//
//	Sample a shape, lift it by appending coordinates (zeros or bounded noise),
//	reduce it back with PCA or RBF kernel PCA, then compute Vietoris–Rips
//	persistence diagrams of the original and the reconstruction:
//
//		shapes → embed → reduce → homology(original) + homology(reconstructed)
//
// Under the hood, everything is organized into subpackages:
//
//	cloud/      - immutable N×D PointCloud, validation, global min/max
//	shapes/     - seeded generators: swiss roll, cylinder, sphere, torus, circle, eight
//	embed/      - Augment: append extra dimensions with optional uniform noise
//	reduce/     - Reducer: linear PCA and RBF kernel PCA on gonum eigensolvers
//	diagram/    - persistence pairs, diagrams and per-degree sets
//	homology/   - Rips engine: union-find H0, cohomology with clearing for H≥1
//	pipeline/   - Run: the embed → reconstruct → compare orchestration
//	experiment/ - bounded-concurrency batches of runs described as data
//	store/      - SQLite persistence of runs with zstd-compressed diagrams
//
// Quick example:
//
//	p, _ := pipeline.New(reduce.NewSpectral(), homology.NewRips())
//	pc, _ := shapes.NewSwissRoll(shapes.WithSeed(1)).Generate(100)
//	res, _ := p.Run(ctx, pc, embed.Spec{ExtraDims: 20, Noise: true},
//		reduce.Linear, pipeline.DefaultMaxDim, rand.New(rand.NewSource(1)))
//	original, reconstructed := res.Diagrams()
//
//	go get github.com/alessimichele/PersHomEmbProj
package pershomembproj
