package hohmann

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

// TransferResult holds the outcome of a two-impulse transfer between circular
// coplanar orbits. Both burns are SIGNED: a positive Δv is a prograde burn
// and a negative Δv a retrograde one, so raising transfers have two positive
// burns and lowering transfers two negative ones.
type TransferResult struct {
	Δv1           float64 // first burn, m/s
	Δv2           float64 // second burn, m/s
	TotalΔv       float64 // |Δv1| + |Δv2|, m/s
	TransferTime  float64 // time of flight between the burns, seconds
	SemiMajorAxis float64 // semi-major axis of the transfer ellipse, meters
}

// Hohmann computes the two-impulse transfer between circular coplanar orbits
// of radii rInit and rFinal meters around the given body. Identical radii are
// a degenerate transfer: all zeros and no error.
func Hohmann(rInit, rFinal float64, body Body) (TransferResult, error) {
	if rInit <= 0 || rFinal <= 0 {
		return TransferResult{}, errors.New("orbital radius must be positive")
	}
	if body.μ <= 0 {
		return TransferResult{}, errors.New("body has an undefined gravitational parameter")
	}
	if rInit == rFinal {
		return TransferResult{SemiMajorAxis: rInit}, nil
	}
	μ := body.μ
	a := (rInit + rFinal) / 2
	vInit := math.Sqrt(μ / rInit)
	vFinal := math.Sqrt(μ / rFinal)
	// Vis-viva at both apsides of the transfer ellipse.
	vDeparture := math.Sqrt(μ * (2/rInit - 1/a))
	vArrival := math.Sqrt(μ * (2/rFinal - 1/a))
	Δv1 := vDeparture - vInit
	Δv2 := vFinal - vArrival
	return TransferResult{
		Δv1:           Δv1,
		Δv2:           Δv2,
		TotalΔv:       math.Abs(Δv1) + math.Abs(Δv2),
		TransferTime:  math.Pi * math.Sqrt(math.Pow(a, 3)/μ),
		SemiMajorAxis: a,
	}, nil
}

// TransferTimeHours returns the time of flight in hours.
func (r TransferResult) TransferTimeHours() float64 {
	return r.TransferTime / 3600
}

// TransferTimeDays returns the time of flight in days.
func (r TransferResult) TransferTimeDays() float64 {
	return r.TransferTime / 86400
}

// Duration returns the time of flight.
func (r TransferResult) Duration() time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", r.TransferTime))
	return duration
}

// BurnDirection returns "prograde", "retrograde" or "none" for a signed Δv.
func BurnDirection(Δv float64) string {
	switch {
	case Δv > 0:
		return "prograde"
	case Δv < 0:
		return "retrograde"
	default:
		return "none"
	}
}

// PhaseAngle returns the angle in radians by which a rendezvous target must
// lead the chaser at the first burn so that both reach the arrival point at
// the same time. Lowering transfers return a negative angle, i.e. the target
// trails the chaser. The angle is undefined for identical radii.
func PhaseAngle(rInit, rFinal float64) (float64, error) {
	if rInit <= 0 || rFinal <= 0 {
		return 0, errors.New("orbital radius must be positive")
	}
	if rInit == rFinal {
		return 0, errors.New("phase angle is undefined for identical orbits")
	}
	return math.Pi * (1 - math.Pow(rInit/rFinal+1, 1.5)/(2*math.Sqrt2)), nil
}

// Transfer defines a Hohmann transfer from an initial to a final orbit.
type Transfer struct {
	Initial Orbit
	Final   Orbit
	Result  TransferResult
}

// NewTransfer computes the transfer between two orbits around the same body.
// Same-ness is decided on μ within 1 m^3/s^2: no two catalog bodies are
// anywhere near that close.
func NewTransfer(initial, final Orbit) (*Transfer, error) {
	if !scalar.EqualWithinAbs(initial.Origin.μ, final.Origin.μ, 1.0) {
		return nil, errors.New("cannot transfer between orbits around different bodies")
	}
	result, err := Hohmann(initial.r, final.r, initial.Origin)
	if err != nil {
		return nil, err
	}
	return &Transfer{initial, final, result}, nil
}

// IsRaising returns whether this transfer raises the orbit.
func (t Transfer) IsRaising() bool {
	return t.Final.r > t.Initial.r
}

// PhaseAngle returns the rendezvous phase angle of this transfer in radians.
func (t Transfer) PhaseAngle() (float64, error) {
	return PhaseAngle(t.Initial.r, t.Final.r)
}

// Summary returns a human readable report of this transfer.
func (t Transfer) Summary() string {
	var b strings.Builder
	b.WriteString("\n========================================\n")
	b.WriteString("      Hohmann Transfer Summary\n")
	b.WriteString("========================================\n\n")
	fmt.Fprintf(&b, "Central Body: %s\n\n", t.Initial.Origin.name)
	summarizeOrbit(&b, "Initial Orbit", t.Initial)
	summarizeOrbit(&b, "Final Orbit", t.Final)
	b.WriteString("Transfer Orbit:\n")
	fmt.Fprintf(&b, "  Semi-major axis: %.0f km\n", t.Result.SemiMajorAxis/1000)
	if t.IsRaising() {
		b.WriteString("  Type: Raising\n\n")
	} else {
		b.WriteString("  Type: Lowering\n\n")
	}
	b.WriteString("Delta-v Requirements:\n")
	fmt.Fprintf(&b, "  First burn (dv1):  %.2f m/s (%s)\n", t.Result.Δv1, BurnDirection(t.Result.Δv1))
	fmt.Fprintf(&b, "  Second burn (dv2): %.2f m/s (%s)\n", t.Result.Δv2, BurnDirection(t.Result.Δv2))
	fmt.Fprintf(&b, "  Total dv:          %.2f m/s\n\n", t.Result.TotalΔv)
	b.WriteString("Transfer Time:\n")
	if hours := t.Result.TransferTimeHours(); hours < 24 {
		fmt.Fprintf(&b, "  %.2f hours\n", hours)
	} else {
		fmt.Fprintf(&b, "  %.2f days\n", t.Result.TransferTimeDays())
		fmt.Fprintf(&b, "  (%.2f hours)\n", hours)
	}
	if θ, err := t.PhaseAngle(); err == nil {
		fmt.Fprintf(&b, "\nPhase Angle for Rendezvous: %.2f deg\n", θ/deg2rad)
	} else {
		b.WriteString("\nPhase Angle for Rendezvous: n/a\n")
	}
	b.WriteString("\n========================================\n")
	return b.String()
}

func summarizeOrbit(b *strings.Builder, title string, o Orbit) {
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintf(b, "  Radius:   %.0f km\n", o.r/1000)
	if alt, ok := o.Altitude(); ok {
		fmt.Fprintf(b, "  Altitude: %.0f km\n", alt/1000)
	}
	fmt.Fprintf(b, "  Velocity: %.2f m/s\n", o.Velocity())
	fmt.Fprintf(b, "  Period:   %.2f hours\n\n", o.PeriodSeconds()/3600)
}
