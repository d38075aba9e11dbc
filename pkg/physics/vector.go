// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
