package hohmann

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Orbit defines a circular orbit of a given radius around an origin body.
type Orbit struct {
	Origin Body // Origin of this orbit
	r      float64
}

// NewOrbit returns an orbit of radius r meters around the given body.
func NewOrbit(body Body, r float64) (Orbit, error) {
	if r <= 0 {
		return Orbit{}, errors.New("orbital radius must be positive")
	}
	return Orbit{body, r}, nil
}

// NewOrbitFromAltitude returns an orbit at the given altitude in meters above
// the mean surface of the given body.
func NewOrbitFromAltitude(body Body, altitude float64) (Orbit, error) {
	radius, ok := body.Radius()
	if !ok {
		return Orbit{}, errors.New("cannot create orbit from altitude: body has no defined radius")
	}
	return NewOrbit(body, radius+altitude)
}

// Radius returns the orbital radius in meters.
func (o Orbit) Radius() float64 {
	return o.r
}

// Altitude returns the altitude in meters above the mean surface of the
// origin body, and whether that body has a defined radius at all.
// Note: an orbit below the surface has a negative altitude.
func (o Orbit) Altitude() (float64, bool) {
	radius, ok := o.Origin.Radius()
	if !ok {
		return 0, false
	}
	return o.r - radius, true
}

// Velocity returns the orbital velocity in m/s.
func (o Orbit) Velocity() float64 {
	return math.Sqrt(o.Origin.μ / o.r)
}

// PeriodSeconds returns the period of this orbit in seconds.
func (o Orbit) PeriodSeconds() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(o.r, 3)/o.Origin.μ)
}

// Period returns the period of this orbit.
func (o Orbit) Period() time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", o.PeriodSeconds()))
	return duration
}

// String implements the Stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("r=%.1f km around %s", o.r/1e3, o.Origin.name)
}

// Equals returns whether the provided orbit is the same.
func (o Orbit) Equals(o1 Orbit) bool {
	return o.Origin.Equals(o1.Origin) && o.r == o1.r
}

/* Definitions */

// LEO is a typical low Earth orbit, at an altitude of 400 km.
var LEO = Orbit{Earth, Earth.radius + 400e3}

// ISS is the orbit of the International Space Station, at 420 km.
var ISS = Orbit{Earth, Earth.radius + 420e3}

// GPS is the orbit of the navigation constellations, at 20,200 km.
var GPS = Orbit{Earth, Earth.radius + 20200e3}

// GEO is the geostationary orbit, at 35,786 km.
var GEO = Orbit{Earth, Earth.radius + 35786e3}

// Radii2ae returns the semi major axis and the eccentricty from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
