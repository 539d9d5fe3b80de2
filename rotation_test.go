package hohmann

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestR3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r3 := R3(x)
	// Test items equal to 1.
	if r3.At(2, 2) != 1 {
		t.Fatal("expected R3.At(2, 2) = 1\n")
	}
	// Test items equal to 0.
	if r3.At(2, 0) != r3.At(2, 1) || r3.At(0, 2) != r3.At(1, 2) || r3.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3\n")
	}
	// Test R3.
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced\n")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced\n")
	}
}

func TestMxV33(t *testing.T) {
	// A rotation about the third axis preserves the norm and the Z component.
	v := []float64{3, 4, 5}
	rotated := MxV33(R3(math.Pi/7), v)
	if !scalar.EqualWithinAbs(norm(rotated), norm(v), 1e-12) {
		t.Fatalf("rotation changed the norm: %f != %f", norm(rotated), norm(v))
	}
	if rotated[2] != v[2] {
		t.Fatalf("rotation changed the Z component: %f", rotated[2])
	}
	// A half turn about the third axis negates X and Y.
	flipped := MxV33(R3(math.Pi), []float64{1, 2, 0})
	if !scalar.EqualWithinAbs(flipped[0], -1, 1e-12) || !scalar.EqualWithinAbs(flipped[1], -2, 1e-12) {
		t.Fatalf("half turn failed: %+v", flipped)
	}
}
