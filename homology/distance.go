// SPDX-License-Identifier: MIT

package homology

import (
	"math"

	"github.com/alessimichele/PersHomEmbProj/cloud"
)

// distances is a dense symmetric Euclidean distance matrix.
type distances struct {
	n int
	d []float64 // row-major n×n
}

// newDistances computes all pairwise distances of c. O(N²·D).
func newDistances(c *cloud.PointCloud) distances {
	n := c.Rows()
	d := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := math.Sqrt(c.Dist2(i, j))
			d[i*n+j] = v
			d[j*n+i] = v
		}
	}

	return distances{n: n, d: d}
}

func (m distances) at(i, j int) float64 { return m.d[i*m.n+j] }

// enclosingRadius returns min_i max_j d(i,j). For t >= this value the Rips
// complex is a cone over the minimizing point.
func (m distances) enclosingRadius() float64 {
	best := math.Inf(1)
	for i := 0; i < m.n; i++ {
		far := 0.0
		for j := 0; j < m.n; j++ {
			if v := m.at(i, j); v > far {
				far = v
			}
		}
		if far < best {
			best = far
		}
	}

	return best
}
