package hohmann

import (
	"fmt"
	"math"
)

// CircularVelocity returns the velocity in m/s of a circular orbit of radius
// r meters around this body.
func (b Body) CircularVelocity(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("orbital radius must be positive")
	}
	return math.Sqrt(b.μ / r), nil
}

// EscapeVelocity returns the velocity in m/s needed to escape this body from
// a radius of r meters.
func (b Body) EscapeVelocity(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("orbital radius must be positive")
	}
	return math.Sqrt(2 * b.μ / r), nil
}

// OrbitalPeriod returns the period in seconds of a circular orbit of radius
// r meters around this body.
func (b Body) OrbitalPeriod(r float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("orbital radius must be positive")
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(r, 3)/b.μ), nil
}

// VisViva returns the velocity in m/s at a radius of r meters on an orbit of
// semi-major axis a meters around this body. A negative a is a hyperbolic
// orbit. Radii which the orbit never reaches return an error.
func (b Body) VisViva(r, a float64) (float64, error) {
	if r <= 0 {
		return 0, fmt.Errorf("orbital radius must be positive")
	}
	vSq := b.μ * (2/r - 1/a)
	if vSq < 0 {
		return 0, fmt.Errorf("orbit with a=%g m does not reach a radius of %g m", a, r)
	}
	return math.Sqrt(vSq), nil
}
