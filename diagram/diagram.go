// SPDX-License-Identifier: MIT
// Package: diagram
//
// diagram.go - persistence pairs, per-degree diagrams and degree-indexed sets.
//
// Invariants of a valid Set for maximum degree d:
//   - len(Set) == d+1; Set[k] holds the bars of homology degree k.
//   - Every pair satisfies 0 <= Birth <= Death; neither is NaN.
//   - Death == +Inf marks an essential class (never dies in the filtration).
//   - Zero-length bars are not required to be absent, but engines in this
//     module never emit them.

package diagram

import (
	"fmt"
	"math"
	"sort"
)

// Pair is one bar of a persistence diagram.
type Pair struct {
	Birth float64
	Death float64
}

// Persistence returns Death − Birth (+Inf for essential pairs).
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// Essential reports whether the pair never dies.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 1) }

// Validate checks birth/death ordering and finiteness of the birth.
func (p Pair) Validate() error {
	switch {
	case math.IsNaN(p.Birth) || math.IsNaN(p.Death):
		return fmt.Errorf("%v: NaN: %w", p, ErrInvalidPair)
	case math.IsInf(p.Birth, 0):
		return fmt.Errorf("%v: infinite birth: %w", p, ErrInvalidPair)
	case p.Birth < 0:
		return fmt.Errorf("%v: negative birth: %w", p, ErrInvalidPair)
	case p.Death < p.Birth:
		return fmt.Errorf("%v: death before birth: %w", p, ErrInvalidPair)
	}

	return nil
}

// String renders "(birth, death)", e.g. "(0, +Inf)" for an essential H0 bar.
func (p Pair) String() string {
	return fmt.Sprintf("(%g, %g)", p.Birth, p.Death)
}

// Diagram is the multiset of bars of one homology degree.
type Diagram []Pair

// Finite returns the pairs with a finite death, in their current order.
func (d Diagram) Finite() Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if !p.Essential() {
			out = append(out, p)
		}
	}

	return out
}

// Essential returns the pairs with Death == +Inf, in their current order.
func (d Diagram) Essential() Diagram {
	out := make(Diagram, 0)
	for _, p := range d {
		if p.Essential() {
			out = append(out, p)
		}
	}

	return out
}

// Sorted returns a copy ordered by (Birth, Death) ascending.
func (d Diagram) Sorted() Diagram {
	out := d.Clone()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Birth != out[j].Birth {
			return out[i].Birth < out[j].Birth
		}
		return out[i].Death < out[j].Death
	})

	return out
}

// Clone returns an independent copy (nil stays nil).
func (d Diagram) Clone() Diagram {
	if d == nil {
		return nil
	}
	out := make(Diagram, len(d))
	copy(out, d)

	return out
}

// MaxPersistence returns the longest finite bar length (0 for none).
func (d Diagram) MaxPersistence() float64 {
	best := 0.0
	for _, p := range d {
		if !p.Essential() && p.Persistence() > best {
			best = p.Persistence()
		}
	}

	return best
}

// Set holds one Diagram per homology degree, indexed 0..maxdim.
type Set []Diagram

// MaxDim returns len(s)−1 (−1 for an empty set).
func (s Set) MaxDim() int { return len(s) - 1 }

// Validate checks len(s) == maxdim+1 and every pair's invariants.
func (s Set) Validate(maxdim int) error {
	if len(s) != maxdim+1 {
		return fmt.Errorf("have %d degrees, want %d: %w", len(s), maxdim+1, ErrDegreeCount)
	}
	for k, d := range s {
		for i, p := range d {
			if err := p.Validate(); err != nil {
				return fmt.Errorf("degree %d pair %d: %w", k, i, err)
			}
		}
	}

	return nil
}

// Clone deep-copies the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, d := range s {
		out[k] = d.Clone()
		if out[k] == nil {
			out[k] = Diagram{}
		}
	}

	return out
}

// Comparable reports ErrIncomparable unless a and b cover the same degrees.
func Comparable(a, b Set) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d degrees: %w", len(a), len(b), ErrIncomparable)
	}

	return nil
}

// ApproxEqual reports whether a and b hold the same multisets of bars per
// degree, matching sorted bars pairwise with absolute tolerance tol.
// Essential bars match only essential bars.
func ApproxEqual(a, b Set, tol float64) bool {
	if Comparable(a, b) != nil {
		return false
	}
	for k := range a {
		if len(a[k]) != len(b[k]) {
			return false
		}
		x, y := a[k].Sorted(), b[k].Sorted()
		for i := range x {
			if !within(x[i].Birth, y[i].Birth, tol) || !within(x[i].Death, y[i].Death, tol) {
				return false
			}
		}
	}

	return true
}

func within(x, y, tol float64) bool {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= tol
}
