// Package algebra implements exact 3x3 integer matrix arithmetic for the Hill cipher.
//
// Every function here works over plain int64 values and never reduces its result.
// Modular reduction is the caller's decision (see ReduceMod), which keeps the same
// routines usable for finite field keys and for unimodular integer keys.
package algebra

import "math"

// Size is the block and matrix dimension.
const Size = 3

// Matrix3x3 is a 3x3 integer matrix stored row-major.
// It is a value type: assigning or returning it copies all nine entries.
type Matrix3x3 [Size][Size]int64

// Vector3 is a column vector of three integers, one cipher block.
type Vector3 [Size]int64

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromRows builds a matrix from a row-major slice of rows.
// It returns false unless rows is exactly 3x3.
func FromRows(rows [][]int64) (Matrix3x3, bool) {
	var m Matrix3x3
	if len(rows) != Size {
		return m, false
	}
	for i, row := range rows {
		if len(row) != Size {
			return m, false
		}
		copy(m[i][:], row)
	}
	return m, true
}

// Rows returns the matrix as freshly allocated row slices.
func (m Matrix3x3) Rows() [][]int64 {
	rows := make([][]int64, Size)
	for i := range m {
		rows[i] = append([]int64(nil), m[i][:]...)
	}
	return rows
}

// Entries returns the nine entries in row-major order.
func (m Matrix3x3) Entries() []int64 {
	out := make([]int64, 0, Size*Size)
	for i := range m {
		out = append(out, m[i][:]...)
	}
	return out
}

// Determinant computes det(m) by cofactor expansion along the first row.
func Determinant(m Matrix3x3) int64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Cofactor returns the signed cofactor matrix C, where C[i][j] = (-1)^(i+j) * minor(i, j).
func Cofactor(m Matrix3x3) Matrix3x3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return Matrix3x3{
		{e*i - f*h, -(d*i - f*g), d*h - e*g},
		{-(b*i - c*h), a*i - c*g, -(a*h - b*g)},
		{b*f - c*e, -(a*f - c*d), a*e - b*d},
	}
}

// Transpose returns the transpose of m.
func Transpose(m Matrix3x3) Matrix3x3 {
	var t Matrix3x3
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Adjugate returns transpose(Cofactor(m)).
// It satisfies m * Adjugate(m) = Determinant(m) * I.
func Adjugate(m Matrix3x3) Matrix3x3 {
	return Transpose(Cofactor(m))
}

// MulVec computes m * v as a sum of products.
func MulVec(m Matrix3x3, v Vector3) Vector3 {
	var out Vector3
	for i := 0; i < Size; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Mul computes the matrix product a * b.
func Mul(a, b Matrix3x3) Matrix3x3 {
	var out Matrix3x3
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

// Scale multiplies every entry by k.
func Scale(m Matrix3x3, k int64) Matrix3x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= k
		}
	}
	return m
}

// Negate returns -m.
func Negate(m Matrix3x3) Matrix3x3 {
	return Scale(m, -1)
}

// ReduceMod reduces every entry into [0, p).
func ReduceMod(m Matrix3x3, p int64) Matrix3x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] = mod(m[i][j], p)
		}
	}
	return m
}

// ReduceVecMod reduces every component into [0, p).
func ReduceVecMod(v Vector3, p int64) Vector3 {
	for i := range v {
		v[i] = mod(v[i], p)
	}
	return v
}

// Equal reports whether a and b have identical entries.
func Equal(a, b Matrix3x3) bool {
	return a == b
}

// MaxAbs returns the largest absolute entry of m.
func MaxAbs(m Matrix3x3) int64 {
	var max int64
	for i := range m {
		for _, x := range m[i] {
			if x == math.MinInt64 {
				return math.MaxInt64
			}
			if x < 0 {
				x = -x
			}
			if x > max {
				max = x
			}
		}
	}
	return max
}

// mod returns x mod p, always in [0, p).
func mod(x, p int64) int64 {
	r := x % p
	if r < 0 {
		r += p
	}
	return r
}
