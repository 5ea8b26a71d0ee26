// Package softmax computes the cross-entropy loss of a linear softmax
// classifier and its gradient with respect to the weights.
//
// Inputs are a D×C weight matrix W, an N×D batch X, N integer labels in
// [0, C) and an L2 strength reg.  The loss is the mean over the batch of
// -log p[y[i]], where p is the softmax of X[i]·W, plus reg·ΣW².  The gradient
// dW has the same shape as W.
//
// Two implementations are provided: LossNaive walks the batch one example at
// a time, LossVectorized works on the whole batch with gonum matrix
// operations.  They agree to floating-point tolerance.  Neither validates
// its inputs: shape mismatches and out-of-range labels panic.  Use Validate
// first when inputs come from an untrusted source.
package softmax

import (
	"gonum.org/v1/gonum/mat"
)

// LossFunc is the signature shared by the loss implementations.  It returns
// the scalar loss and a newly allocated gradient; W and X are not modified.
type LossFunc func(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense)

// Implementations lists the available loss functions by name.
var Implementations = map[string]LossFunc{
	"naive":      LossNaive,
	"vectorized": LossVectorized,
}

// checkLabels panics with mat.ErrShape if the label count does not match the
// batch size.  Label values are not inspected.
func checkLabels(n int, y []int) {
	if len(y) != n {
		panic(mat.ErrShape)
	}
}
