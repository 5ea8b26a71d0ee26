// Package gradcheck compares analytic gradients against centered finite
// differences.
package gradcheck

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samcharles93/linclass/internal/logger"
)

// ErrConfig is wrapped by Config.Validate and everything that calls it.
var ErrConfig = fmtError("invalid gradcheck config")

type fmtError string

func (e fmtError) Error() string { return string(e) }

// Func is a scalar function of a weight matrix.  It must not retain W.
type Func func(W *mat.Dense) float64

// RelError returns |a-b| / (|a|+|b|), or 0 when both are zero.
func RelError(a, b float64) float64 {
	den := math.Abs(a) + math.Abs(b)
	if den == 0 {
		return 0
	}
	return math.Abs(a-b) / den
}

// probe evaluates (f(W+h·e_ij) - f(W-h·e_ij)) / 2h.  W is restored before
// returning.
func probe(f Func, W *mat.Dense, i, j int, h float64) float64 {
	old := W.At(i, j)
	W.Set(i, j, old+h)
	fp := f(W)
	W.Set(i, j, old-h)
	fm := f(W)
	W.Set(i, j, old)
	return (fp - fm) / (2 * h)
}

// Numerical returns the centered-difference gradient of f at W for every
// entry.  W is perturbed in place during the call and restored afterwards.
func Numerical(f Func, W *mat.Dense, h float64) *mat.Dense {
	r, c := W.Dims()
	grad := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			grad.Set(i, j, probe(f, W, i, j, h))
		}
	}
	return grad
}

// Sparse probes cfg.Samples random entries of W and compares each finite
// difference with the matching entry of analytic.  Probe results are logged
// at debug level through the context logger.  The check stops early if ctx
// is cancelled.
func Sparse(ctx context.Context, cfg Config, f Func, W, analytic *mat.Dense) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	r, c := W.Dims()
	if ar, ac := analytic.Dims(); ar != r || ac != c {
		panic(mat.ErrShape)
	}

	log := logger.FromContext(ctx).With("component", "gradcheck")
	rep := newReport()
	rng := rand.New(rand.NewSource(cfg.Seed))

	for range cfg.Samples {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		i, j := rng.Intn(r), rng.Intn(c)
		num := probe(f, W, i, j, cfg.H)
		ana := analytic.At(i, j)
		s := Sample{
			Row:       i,
			Col:       j,
			Analytic:  ana,
			Numerical: num,
			RelError:  RelError(ana, num),
		}
		s.Passed = s.RelError <= cfg.Tolerance || math.Abs(ana-num) <= cfg.AbsTolerance
		log.Debug("probe", "row", i, "col", j, "analytic", ana, "numerical", num, "rel_error", s.RelError)
		rep.add(s)
	}

	if !rep.Passed {
		log.Warn("gradient check failed", "id", rep.ID, "max_rel_error", rep.MaxRelError)
	} else {
		log.Info("gradient check passed", "id", rep.ID, "max_rel_error", rep.MaxRelError)
	}
	return rep, nil
}
