package softmax

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Errors wrapped by Validate.
var (
	// ErrShape means W, X and y do not describe the same D, N.
	ErrShape = fmtError("shape mismatch")
	// ErrLabel means a label falls outside [0, C).
	ErrLabel = fmtError("label out of range")
	// ErrReg means reg is negative or not finite.
	ErrReg = fmtError("invalid regularization strength")
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// Validate reports whether W, X, y and reg form a well-defined loss call.
// The returned error wraps ErrShape, ErrLabel or ErrReg.
func Validate(W, X mat.Matrix, y []int, reg float64) error {
	d, c := W.Dims()
	n, xd := X.Dims()
	if xd != d {
		return fmt.Errorf("%w: X is %dx%d but W has %d rows", ErrShape, n, xd, d)
	}
	if len(y) != n {
		return fmt.Errorf("%w: %d labels for %d examples", ErrShape, len(y), n)
	}
	for i, label := range y {
		if label < 0 || label >= c {
			return fmt.Errorf("%w: y[%d]=%d with %d classes", ErrLabel, i, label, c)
		}
	}
	if reg < 0 || math.IsNaN(reg) || math.IsInf(reg, 0) {
		return fmt.Errorf("%w: %g", ErrReg, reg)
	}
	return nil
}
