package softmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LossVectorized computes the same loss and gradient as LossNaive using whole
// batch matrix products: P = softmax(X·W) row-wise, dW = Xᵀ(P − Y)/N + 2·reg·W
// where Y holds the one-hot labels.
func LossVectorized(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	n, _ := X.Dims()
	_, c := W.Dims()
	checkLabels(n, y)

	var p mat.Dense
	p.Mul(X, W)
	softmaxRows(&p)

	var loss float64
	for i, label := range y {
		loss -= math.Log(p.At(i, label))
	}
	loss /= float64(n)

	var sq mat.Dense
	sq.MulElem(W, W)
	loss += reg * mat.Sum(&sq)

	p.Sub(&p, oneHot(y, c))

	var dW mat.Dense
	dW.Mul(X.T(), &p)
	dW.Scale(1/float64(n), &dW)

	var regW mat.Dense
	regW.Scale(2*reg, W)
	dW.Add(&dW, &regW)
	return loss, &dW
}

// softmaxRows replaces every row of m with its softmax.  Each row is shifted
// by its own maximum before exponentiating.
func softmaxRows(m *mat.Dense) {
	r, _ := m.Dims()
	maxes := make([]float64, r)
	for i := range maxes {
		maxes[i] = floats.Max(m.RawRowView(i))
	}
	m.Apply(func(i, _ int, v float64) float64 {
		return math.Exp(v - maxes[i])
	}, m)
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		floats.Scale(1/floats.Sum(row), row)
	}
}

// oneHot builds the len(y)×c label matrix with a single 1 per row.
func oneHot(y []int, c int) *mat.Dense {
	out := mat.NewDense(len(y), c, nil)
	for i, label := range y {
		out.Set(i, label, 1)
	}
	return out
}
