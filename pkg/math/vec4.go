package math

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// Dot returns the dot product of a and b.
func Dot(a, b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
