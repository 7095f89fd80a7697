package fontconfig

import (
	"fmt"

	"github.com/npillmayer/fontconfig/sys"
)

// Matrix is a 2×2 affine transformation, laid out like FcMatrix.
// The zero value is not the identity; use IdentityMatrix.
type Matrix sys.Matrix

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return Matrix{XX: 1, YY: 1}
}

func (m *Matrix) raw() *sys.Matrix {
	return (*sys.Matrix)(m)
}

// Multiply returns m × b.
func (m Matrix) Multiply(b Matrix) Matrix {
	var r Matrix
	fc().MatrixMultiply(r.raw(), m.raw(), b.raw())
	return r
}

// Rotate returns m rotated by the angle with cosine c and sine s.
func (m Matrix) Rotate(c, s float64) Matrix {
	fc().MatrixRotate(m.raw(), c, s)
	return m
}

// Scale returns m scaled by sx horizontally and sy vertically.
func (m Matrix) Scale(sx, sy float64) Matrix {
	fc().MatrixScale(m.raw(), sx, sy)
	return m
}

// Shear returns m sheared by sh horizontally and sv vertically.
func (m Matrix) Shear(sh, sv float64) Matrix {
	fc().MatrixShear(m.raw(), sh, sv)
	return m
}

// Equal compares two matrices.
func (m Matrix) Equal(b Matrix) bool {
	return fc().MatrixEqual(m.raw(), b.raw()) == sys.True
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", m.XX, m.XY, m.YX, m.YY)
}
