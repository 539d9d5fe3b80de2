package hohmann

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
	// G is the universal gravitational constant in m^3/(kg*s^2).
	G = 6.67430e-11
	// G0 is the standard gravity in m/s^2.
	G0 = 9.80665
)

// Body defines a celestial body as a gravitational parameter with an optional
// mean radius. Note: μ is the measured GM product, never G times a mass, as
// the product is known to far more digits than either factor.
type Body struct {
	name      string
	μ         float64
	radius    float64
	helioA    float64
	hasRadius bool
}

// NewBody returns a body from its gravitational parameter in m^3/s^2.
func NewBody(name string, gm float64) (Body, error) {
	if gm <= 0 {
		return Body{}, fmt.Errorf("gravitational parameter must be positive")
	}
	return Body{name: name, μ: gm}, nil
}

// NewBodyWithRadius returns a body which also has a mean radius in meters.
func NewBodyWithRadius(name string, gm, radius float64) (Body, error) {
	body, err := NewBody(name, gm)
	if err != nil {
		return body, err
	}
	if radius <= 0 {
		return Body{}, fmt.Errorf("body radius must be positive")
	}
	body.radius = radius
	body.hasRadius = true
	return body, nil
}

// Name returns the name of this body.
func (b Body) Name() string {
	return b.name
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (b Body) GM() float64 {
	return b.μ
}

// Radius returns the mean radius in meters and whether one is defined.
// The giants carry no radius at all, which is not the same as zero.
func (b Body) Radius() (float64, bool) {
	return b.radius, b.hasRadius
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.name + " body"
}

// Equals returns whether the provided body is exactly this one.
func (b Body) Equals(o Body) bool {
	return b.name == o.name && b.μ == o.μ && b.radius == o.radius &&
		b.helioA == o.helioA && b.hasRadius == o.hasRadius
}

// MeanHelioOrbit returns the circular approximation of this body's orbit
// around the Sun, or an error for bodies without a tabulated mean radius.
func (b Body) MeanHelioOrbit() (Orbit, error) {
	if b.helioA == 0 {
		return Orbit{}, fmt.Errorf("no mean heliocentric orbit for '%s'", b.name)
	}
	return Orbit{Sun, b.helioA}, nil
}

/* Definitions */

// Sun is our closest star.
var Sun = Body{"Sun", 1.32712440018e20, 6.9634e8, 0, true}

// Mercury is the smallest planet.
var Mercury = Body{"Mercury", 2.2032e13, 0, 5.791e10, false}

// Venus is poisonous.
var Venus = Body{"Venus", 3.24859e14, 0, 1.082e11, false}

// Earth is home.
var Earth = Body{"Earth", 3.986004418e14, 6.371e6, 1.496e11, true}

// Moon is Earth's companion.
var Moon = Body{"Moon", 4.9048695e12, 1.7374e6, 0, true}

// Mars is the vacation place.
var Mars = Body{"Mars", 4.282837e13, 3.3895e6, 2.279e11, true}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 1.26686534e17, 0, 7.785e11, false}

// Saturn has rings.
var Saturn = Body{"Saturn", 3.7931187e16, 0, 1.432e12, false}

// Uranus spins on its side.
var Uranus = Body{"Uranus", 5.793939e15, 0, 2.867e12, false}

// Neptune is the windiest.
var Neptune = Body{"Neptune", 6.836529e15, 0, 4.515e12, false}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
}
