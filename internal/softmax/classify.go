package softmax

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scores returns the N×C matrix of raw class scores X·W.
func Scores(W, X mat.Matrix) *mat.Dense {
	var s mat.Dense
	s.Mul(X, W)
	return &s
}

// Probabilities returns the row-wise softmax of X·W.  Each row is a
// probability distribution over the C classes.
func Probabilities(W, X mat.Matrix) *mat.Dense {
	p := Scores(W, X)
	softmaxRows(p)
	return p
}

// Predict returns the highest scoring class for every example.  Ties resolve
// to the lowest class index.
func Predict(W, X mat.Matrix) []int {
	s := Scores(W, X)
	n, _ := s.Dims()
	out := make([]int, n)
	for i := range out {
		out[i] = floats.MaxIdx(s.RawRowView(i))
	}
	return out
}

// Accuracy returns the fraction of examples whose predicted class equals y.
func Accuracy(W, X mat.Matrix, y []int) float64 {
	pred := Predict(W, X)
	checkLabels(len(pred), y)
	var correct int
	for i, p := range pred {
		if p == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(pred))
}
