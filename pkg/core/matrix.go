package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned when a singular matrix is inverted. Scene
// construction treats this as fatal; it never surfaces during rendering.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a 4x4 matrix in row-major order
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the matrix applied to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant via cofactor expansion of the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix, or ErrNotInvertible for a singular
// matrix.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, fmt.Errorf("determinant is %g: %w", det, ErrNotInvertible)
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment folds the adjugate transpose into the loop
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices match within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// matrix3 is the 3x3 submatrix type used internally by the cofactor expansion
type matrix3 [3][3]float64

func (m Matrix) submatrix(row, col int) matrix3 {
	var result matrix3
	dstRow := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		dstCol := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[dstRow][dstCol] = m[r][c]
			dstCol++
		}
		dstRow++
	}
	return result
}

func (m Matrix) cofactor(row, col int) float64 {
	minor := m.submatrix(row, col).determinant()
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func (m matrix3) determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
