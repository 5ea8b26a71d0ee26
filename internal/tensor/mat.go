package tensor

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Mat represents a dense row‑major matrix of float64 values.
//
// R and C represent the number of rows and columns respectively.  Stride is the
// number of elements between the starts of two consecutive rows (for row‑major
// matrices this is equal to C).  Data holds the flattened matrix values.
//
// Mat does not perform any memory safety beyond the checks performed by Go's
// slice types; out‑of‑range indices will panic.
type Mat struct {
	R, C   int
	Stride int
	Data   []float64
}

// NewMat allocates a new matrix with the given number of rows and columns.
// The underlying slice is zero initialised.  The stride is set to the
// number of columns.
func NewMat(r, c int) Mat {
	if r < 0 || c < 0 {
		panic("negative dimension for matrix")
	}
	return Mat{
		R:      r,
		C:      c,
		Stride: c,
		Data:   make([]float64, r*c),
	}
}

// FromMatrix copies any gonum matrix into a freshly allocated Mat. The result
// never aliases m, so callers are free to modify either side.
func FromMatrix(m mat.Matrix) Mat {
	r, c := m.Dims()
	out := NewMat(r, c)
	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.Data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return out
	}
	for i := 0; i < r; i++ {
		row := out.Data[i*c : (i+1)*c]
		for j := range row {
			row[j] = m.At(i, j)
		}
	}
	return out
}

// Row returns a view of the i‑th row of the matrix as a slice.  The slice
// has length equal to the number of columns.  Modifications to the returned
// slice update the underlying matrix values.
func (m *Mat) Row(i int) []float64 {
	if i < 0 || i >= m.R {
		panic("row index out of range")
	}
	start := i * m.Stride
	return m.Data[start : start+m.C]
}

// Dense returns a gonum view over the same backing storage. Writes through
// either value are visible in the other.
func (m *Mat) Dense() *mat.Dense {
	if m.R == 0 || m.C == 0 {
		panic("gonum cannot represent an empty matrix")
	}
	if m.Stride != m.C {
		panic("strided matrix cannot be viewed as dense")
	}
	return mat.NewDense(m.R, m.C, m.Data)
}

// Scale multiplies every element by alpha.
func (m *Mat) Scale(alpha float64) {
	for i := 0; i < m.R; i++ {
		row := m.Row(i)
		for j := range row {
			row[j] *= alpha
		}
	}
}

// FillRand fills the matrix with reproducible pseudo‑random values drawn
// uniformly from (-scale/2, scale/2).  Multiple calls with the same seed
// produce identical matrices.
func FillRand(m *Mat, seed int64, scale float64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data {
		m.Data[i] = (rng.Float64() - 0.5) * scale
	}
}
