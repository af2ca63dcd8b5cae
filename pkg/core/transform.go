package core

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors
// (W=0) are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a matrix rotating about the x axis by r radians
func RotationX(r float64) Matrix {
	m := Identity()
	m[1][1] = math.Cos(r)
	m[1][2] = -math.Sin(r)
	m[2][1] = math.Sin(r)
	m[2][2] = math.Cos(r)
	return m
}

// RotationY returns a matrix rotating about the y axis by r radians
func RotationY(r float64) Matrix {
	m := Identity()
	m[0][0] = math.Cos(r)
	m[0][2] = math.Sin(r)
	m[2][0] = -math.Sin(r)
	m[2][2] = math.Cos(r)
	return m
}

// RotationZ returns a matrix rotating about the z axis by r radians
func RotationZ(r float64) Matrix {
	m := Identity()
	m[0][0] = math.Cos(r)
	m[0][1] = -math.Sin(r)
	m[1][0] = math.Sin(r)
	m[1][1] = math.Cos(r)
	return m
}

// Shearing returns a matrix that shears each coordinate in proportion to the
// other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with the given approximate up vector.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
