// Package gdtools provides miscellaneous game design helpers built on
// triangular numbers, see https://en.wikipedia.org/wiki/Triangular_number
package gdtools

import "math"

// Triangular returns the nth triangular number
func Triangular(n int) int {
	return n * (n + 1) / 2
}

// TriangularRoot returns the triangular root of n
func TriangularRoot(n int) float64 {
	return (math.Sqrt(float64(n)*8+1) - 1) / 2
}

// SuperiorTriangularRoot grows a little faster than the triangular
// root but follows a very similar curve
func SuperiorTriangularRoot(n int, factor float64) float64 {
	var sum float64
	for i := 1; i <= n; i++ {
		sum += factor / TriangularRoot(i)
	}
	return sum
}

// TriangularValue returns the value of a point at the given triangular
// level
func TriangularValue(n int) float64 {
	return TriangularRoot(n) / float64(n)
}
