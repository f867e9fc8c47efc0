// SPDX-License-Identifier: MIT

// Package experiment runs batches of embed → reconstruct → compare
// experiments described as data (shape name, size, seed, augmentation,
// reducer kind, maxdim), optionally persisting every result.
//
// Runs are independent and fan out over an errgroup with bounded
// concurrency; each run owns its seeded RNG, so a batch is reproducible
// regardless of scheduling.
package experiment
