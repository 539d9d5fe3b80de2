package hohmann

import (
	"fmt"
	"math"
)

// International Standard Atmosphere constants.
const (
	rAir = 287.058 // specific gas constant of dry air, J/(kg*K)
	γAir = 1.4     // heat capacity ratio of air

	seaLevelTemperature = 288.15 // K
	seaLevelPressure    = 101325 // Pa
)

// AtmosphereCeiling is the altitude in meters at which the layer table stops,
// the top of the upper mesosphere.
const AtmosphereCeiling = 84852.0

// Atmosphere is the state of the standard atmosphere at some altitude.
type Atmosphere struct {
	Layer        string  // name of the atmospheric layer
	Temperature  float64 // K
	Pressure     float64 // Pa
	Density      float64 // kg/m^3
	SpeedOfSound float64 // m/s
}

// atmLayer is one band of the ISA table.
type atmLayer struct {
	name  string
	base  float64 // base altitude, m
	top   float64 // top altitude, m
	tBase float64 // temperature at the base, K
	lapse float64 // temperature lapse rate, K/m (zero in isothermal bands)
}

var isaLayers = []atmLayer{
	{"Troposphere", 0, 11000, 288.15, -0.0065},
	{"Tropopause", 11000, 20000, 216.65, 0},
	{"Stratosphere", 20000, 32000, 216.65, 0.001},
	{"Stratosphere 2", 32000, 47000, 228.65, 0.0028},
	{"Stratopause", 47000, 51000, 270.65, 0},
	{"Mesosphere", 51000, 71000, 270.65, -0.0028},
	{"Mesosphere 2", 71000, 84852, 214.65, -0.002},
}

// Base pressures of each layer, filled in once at init. Read-only afterwards.
var isaBasePressure []float64

func init() {
	isaBasePressure = make([]float64, len(isaLayers))
	isaBasePressure[0] = seaLevelPressure
	for i := 1; i < len(isaLayers); i++ {
		below := isaLayers[i-1]
		isaBasePressure[i] = pressureInLayer(below, isaBasePressure[i-1], below.top)
	}
}

// pressureInLayer returns the pressure at altitude h inside the given layer:
// the barometric gradient form when the lapse rate is non zero, the
// isothermal form otherwise.
func pressureInLayer(l atmLayer, pBase, h float64) float64 {
	if l.lapse == 0 {
		return pBase * math.Exp(-G0*(h-l.base)/(rAir*l.tBase))
	}
	t := l.tBase + l.lapse*(h-l.base)
	return pBase * math.Pow(t/l.tBase, -G0/(l.lapse*rAir))
}

// AtmosphereAt returns the standard atmosphere at the given altitude in
// meters. Altitudes outside [0, AtmosphereCeiling] return an error.
func AtmosphereAt(h float64) (Atmosphere, error) {
	if h < 0 || h > AtmosphereCeiling {
		return Atmosphere{}, fmt.Errorf("altitude %.0f m is outside the atmosphere table (0 to %.0f m)", h, AtmosphereCeiling)
	}
	for i, l := range isaLayers {
		if h > l.top {
			continue
		}
		t := l.tBase + l.lapse*(h-l.base)
		p := pressureInLayer(l, isaBasePressure[i], h)
		return Atmosphere{
			Layer:        l.name,
			Temperature:  t,
			Pressure:     p,
			Density:      p / (rAir * t),
			SpeedOfSound: math.Sqrt(γAir * rAir * t),
		}, nil
	}
	// The ceiling check bounds h to the last layer.
	panic("atmosphere table exhausted")
}
