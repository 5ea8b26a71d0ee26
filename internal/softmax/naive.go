package softmax

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samcharles93/linclass/internal/tensor"
)

// LossNaive computes the softmax loss and gradient with explicit loops over
// the examples, classes and features.
func LossNaive(W, X mat.Matrix, y []int, reg float64) (float64, *mat.Dense) {
	w := tensor.FromMatrix(W)
	x := tensor.FromMatrix(X)
	if x.C != w.R {
		panic(mat.ErrShape)
	}
	checkLabels(x.R, y)

	dW := tensor.NewMat(w.R, w.C)
	probs := make([]float64, w.C)
	var loss float64

	for i := 0; i < x.R; i++ {
		xi := x.Row(i)
		tensor.VecMat(probs, xi, &w)
		tensor.Softmax(probs)
		loss -= math.Log(probs[y[i]])

		label := make([]float64, w.C)
		label[y[i]] = 1
		for d, xd := range xi {
			row := dW.Row(d)
			for c := range row {
				row[c] += xd * (probs[c] - label[c])
			}
		}
	}

	n := float64(x.R)
	loss /= n
	dW.Scale(1 / n)

	loss += reg * tensor.SumSquares(w.Data)
	tensor.Axpy(dW.Data, 2*reg, w.Data)
	return loss, dW.Dense()
}
