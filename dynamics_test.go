package hohmann

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCircularVelocity(t *testing.T) {
	rLEO := Earth.radius + 400e3
	vel, err := Earth.CircularVelocity(rLEO)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(vel, 7672.6, 1) {
		t.Fatalf("got v=%f m/s for a 400 km LEO", vel)
	}
	if _, err = Earth.CircularVelocity(0); err == nil {
		t.Fatal("r=0 did not return an error")
	}
	if _, err = Earth.CircularVelocity(-1); err == nil {
		t.Fatal("r<0 did not return an error")
	}
}

func TestEscapeVelocity(t *testing.T) {
	for _, body := range []Body{Earth, Mars, Jupiter} {
		r := 1e7
		circ, _ := body.CircularVelocity(r)
		esc, err := body.EscapeVelocity(r)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinRel(esc, circ*math.Sqrt2, 1e-9) {
			t.Fatalf("%s: escape velocity is not √2 times the circular velocity", body)
		}
		t.Logf("[OK] %s", body)
	}
	if _, err := Earth.EscapeVelocity(0); err == nil {
		t.Fatal("r=0 did not return an error")
	}
}

func TestOrbitalPeriod(t *testing.T) {
	// A geostationary orbit completes one revolution per sidereal day.
	period, err := Earth.OrbitalPeriod(Earth.radius + 35786e3)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(period, 86164.1, 60) {
		t.Fatalf("got period=%f s for GEO", period)
	}
	if _, err = Earth.OrbitalPeriod(-1); err == nil {
		t.Fatal("r<0 did not return an error")
	}
}

func TestVisViva(t *testing.T) {
	r := Earth.radius + 400e3
	vel, err := Earth.VisViva(r, r)
	if err != nil {
		t.Fatal(err)
	}
	circ, _ := Earth.CircularVelocity(r)
	if !scalar.EqualWithinRel(vel, circ, 1e-12) {
		t.Fatal("vis-viva at r=a is not the circular velocity")
	}
	// An orbit whose semi-major axis is below half the radius never reaches it.
	if _, err = Earth.VisViva(r, r/3); err == nil {
		t.Fatal("unreachable radius did not return an error")
	}
	if _, err = Earth.VisViva(0, r); err == nil {
		t.Fatal("r=0 did not return an error")
	}
}
