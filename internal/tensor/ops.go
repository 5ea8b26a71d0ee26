package tensor

import (
	"math"
)

// Axpy computes dst += alpha*x element-wise.
func Axpy(dst []float64, alpha float64, x []float64) {
	if len(x) < len(dst) {
		panic("Axpy source too small")
	}
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}

// VecMat computes dst = x·W for a row vector x of length W.R.
// dst must have length W.C.  Rows of W are accumulated in order so the
// inner loop stays contiguous in memory.
func VecMat(dst, x []float64, w *Mat) {
	if len(x) != w.R {
		panic("VecMat input length mismatch")
	}
	if len(dst) != w.C {
		panic("VecMat dst length mismatch")
	}
	clear(dst)
	for i, xi := range x {
		Axpy(dst, xi, w.Row(i))
	}
}

// Max returns the largest element of x. It panics on an empty slice.
func Max(x []float64) float64 {
	maxv := x[0]
	for _, v := range x[1:] {
		if v > maxv {
			maxv = v
		}
	}
	return maxv
}

// SumSquares returns Σ x[i]².
func SumSquares(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// Softmax applies the softmax function to x in place.  The maximum is
// subtracted before exponentiating; softmax is invariant to that shift.
func Softmax(x []float64) {
	if len(x) == 0 {
		return
	}
	maxv := Max(x)
	var sum float64
	for i := range x {
		v := math.Exp(x[i] - maxv)
		x[i] = v
		sum += v
	}
	inv := 1.0 / sum
	for i := range x {
		x[i] *= inv
	}
}
