// Package toy builds small, reproducible classification problems used for
// testing and benchmarking the loss kernels.
package toy

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samcharles93/linclass/internal/tensor"
)

// Problem is a weight matrix, a batch and its labels.
type Problem struct {
	W *mat.Dense // [D x C]
	X *mat.Dense // [N x D]
	Y []int      // [N]
}

// Random draws W from N(0, wScale²), features uniformly from [-1, 1) via
// tensor.FillRand and labels uniformly from [0, c).  The same seed always
// yields the same problem.
func Random(seed int64, n, d, c int, wScale float64) Problem {
	rng := rand.New(rand.NewSource(seed))
	W := mat.NewDense(d, c, nil)
	W.Apply(func(_, _ int, _ float64) float64 { return rng.NormFloat64() * wScale }, W)
	x := tensor.NewMat(n, d)
	tensor.FillRand(&x, seed+11, 2)
	y := make([]int, n)
	for i := range y {
		y[i] = rng.Intn(c)
	}
	return Problem{W: W, X: x.Dense(), Y: y}
}

// Clusters places perClass points around each of c centres on a circle of
// radius 2 in the plane, jittered by N(0, spread²).  Each row of X is
// (x1, x2, 1); the trailing constant acts as a bias feature.  W is zero.
func Clusters(seed int64, perClass, c int, spread float64) Problem {
	rng := rand.New(rand.NewSource(seed))
	n := perClass * c
	X := mat.NewDense(n, 3, nil)
	y := make([]int, n)
	for k := 0; k < c; k++ {
		cx, cy := centre(k, c)
		for j := 0; j < perClass; j++ {
			i := k*perClass + j
			X.SetRow(i, []float64{
				cx + rng.NormFloat64()*spread,
				cy + rng.NormFloat64()*spread,
				1,
			})
			y[i] = k
		}
	}
	return Problem{W: mat.NewDense(3, c, nil), X: X, Y: y}
}
