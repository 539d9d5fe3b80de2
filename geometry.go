package hohmann

import (
	"errors"
	"math"
)

// Point is a position sample in meters in the plane of the transfer.
type Point struct {
	X float64
	Y float64
}

// PlotData holds the sampled arcs of a transfer: the initial orbit, the
// transfer ellipse from burn to burn, and the final orbit. The departure
// point always sits on the +X axis.
type PlotData struct {
	Initial  []Point
	Transfer []Point
	Final    []Point
}

// TransferGeometry samples each arc of the transfer with n points for
// plotting. Degenerate transfers have no arc to sample and return an error.
func TransferGeometry(t *Transfer, n int) (*PlotData, error) {
	if n < 2 {
		return nil, errors.New("need at least two points per arc")
	}
	rInit, rFinal := t.Initial.r, t.Final.r
	if rInit == rFinal {
		return nil, errors.New("degenerate transfer has no arc to sample")
	}
	rA, rP := rInit, rFinal
	if t.IsRaising() {
		rA, rP = rFinal, rInit
	}
	a, e := Radii2ae(rA, rP)
	p := a * (1 - e*e)
	// Raising transfers depart from the periapsis of the transfer ellipse,
	// lowering ones from its apoapsis.
	ν0 := 0.0
	if !t.IsRaising() {
		ν0 = math.Pi
	}
	flip := R3(ν0) // brings the departure point onto the +X axis
	data := PlotData{
		Initial:  circle(rInit, n),
		Transfer: make([]Point, n),
		Final:    circle(rFinal, n),
	}
	for i := 0; i < n; i++ {
		ν := ν0 + math.Pi*float64(i)/float64(n-1)
		sinν, cosν := math.Sincos(ν)
		r := p / (1 + e*cosν)
		pt := MxV33(flip, []float64{r * cosν, r * sinν, 0})
		data.Transfer[i] = Point{pt[0], pt[1]}
	}
	return &data, nil
}

// Rotate turns all three arcs by the given angle in radians, moving the
// departure point from the +X axis onto that bearing.
func (d *PlotData) Rotate(bearing float64) {
	rot := R3(-bearing)
	for _, arc := range [][]Point{d.Initial, d.Transfer, d.Final} {
		for i, pt := range arc {
			rotated := MxV33(rot, []float64{pt.X, pt.Y, 0})
			arc[i] = Point{rotated[0], rotated[1]}
		}
	}
}

// circle samples a circle of radius r with n points, seam repeated so the
// polyline closes.
func circle(r float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		sinθ, cosθ := math.Sincos(2 * math.Pi * float64(i) / float64(n-1))
		pts[i] = Point{r * cosθ, r * sinθ}
	}
	return pts
}

// CoastSample is one point in time along the coast on the transfer ellipse.
type CoastSample struct {
	Elapsed     float64 // seconds since the first burn
	TrueAnomaly float64 // radians on the transfer ellipse
	Radius      float64 // meters from the center of the body
	X           float64 // meters, same plane as TransferGeometry
	Y           float64
	Velocity    float64 // m/s
}

// CoastTimeline samples the coast between the burns at n evenly spaced times,
// both burns included. Raising transfers run periapsis to apoapsis (true
// anomaly 0 to π), lowering ones apoapsis to periapsis (π to 2π).
func CoastTimeline(t *Transfer, n int) ([]CoastSample, error) {
	if n < 2 {
		return nil, errors.New("need at least two samples")
	}
	rInit, rFinal := t.Initial.r, t.Final.r
	if rInit == rFinal {
		return nil, errors.New("degenerate transfer has nothing to sample")
	}
	rA, rP := rInit, rFinal
	if t.IsRaising() {
		rA, rP = rFinal, rInit
	}
	a, e := Radii2ae(rA, rP)
	// The mean anomaly starts at 0 from periapsis, at π from apoapsis, and
	// advances linearly by exactly π over the coast.
	M0 := 0.0
	if !t.IsRaising() {
		M0 = math.Pi
	}
	flip := R3(M0)
	samples := make([]CoastSample, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		elapsed := t.Result.TransferTime * f
		E, err := eccentricAnomaly(M0+math.Pi*f, e)
		if err != nil {
			return nil, err
		}
		sinE, cosE := math.Sincos(E)
		denom := 1 - e*cosE
		ν := math.Atan2(math.Sqrt(1-e*e)*sinE/denom, (cosE-e)/denom)
		if ν < 0 {
			ν += 2 * math.Pi
		}
		r := a * denom
		v, err := t.Initial.Origin.VisViva(r, a)
		if err != nil {
			return nil, err
		}
		sinν, cosν := math.Sincos(ν)
		pt := MxV33(flip, []float64{r * cosν, r * sinν, 0})
		samples[i] = CoastSample{elapsed, ν, r, pt[0], pt[1], v}
	}
	return samples, nil
}

// eccentricAnomaly solves Kepler's equation M = E - e sin(E) for E by Newton
// iteration.
func eccentricAnomaly(M, e float64) (float64, error) {
	E := M
	for iter := 0; iter < 1000; iter++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < 1e-12 {
			return E, nil
		}
	}
	return 0, errors.New("did not converge after 1000 iterations")
}
