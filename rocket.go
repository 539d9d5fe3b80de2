package hohmann

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TsiolkovskyΔv returns the Δv in m/s delivered by a stage of specific
// impulse isp seconds burning from a mass of m0 down to mf kilograms.
func TsiolkovskyΔv(isp, m0, mf float64) (float64, error) {
	if isp <= 0 {
		return 0, errors.New("specific impulse must be positive")
	}
	if mf <= 0 {
		return 0, errors.New("final mass must be positive")
	}
	if m0 < mf {
		return 0, errors.New("initial mass cannot be less than the final mass")
	}
	return isp * G0 * math.Log(m0/mf), nil
}

// MassRatio returns the mass ratio m0/mf needed to deliver the given Δv with
// the given specific impulse. The magnitude of Δv is what costs propellant,
// so the sign of a retrograde burn is ignored.
func MassRatio(Δv, isp float64) (float64, error) {
	if isp <= 0 {
		return 0, errors.New("specific impulse must be positive")
	}
	return math.Exp(math.Abs(Δv) / (isp * G0)), nil
}

// PropellantMass returns the propellant in kilograms needed for a vehicle of
// the given final mass to deliver the given Δv.
func PropellantMass(Δv, isp, finalMass float64) (float64, error) {
	if finalMass <= 0 {
		return 0, errors.New("final mass must be positive")
	}
	ratio, err := MassRatio(Δv, isp)
	if err != nil {
		return 0, err
	}
	return finalMass * (ratio - 1), nil
}

// Engine defines a chemical engine by its vacuum specific impulse and thrust.
type Engine struct {
	name   string
	isp    float64
	thrust float64
}

// NewEngine returns an engine from its specific impulse in seconds and its
// thrust in newtons.
func NewEngine(name string, isp, thrust float64) (Engine, error) {
	if isp <= 0 {
		return Engine{}, errors.New("specific impulse must be positive")
	}
	if thrust <= 0 {
		return Engine{}, errors.New("thrust must be positive")
	}
	return Engine{name, isp, thrust}, nil
}

// Name returns the name of this engine.
func (e Engine) Name() string {
	return e.name
}

// Isp returns the vacuum specific impulse in seconds.
func (e Engine) Isp() float64 {
	return e.isp
}

// Thrust returns the vacuum thrust in newtons.
func (e Engine) Thrust() float64 {
	return e.thrust
}

// String implements the Stringer interface.
func (e Engine) String() string {
	return fmt.Sprintf("%s (Isp %.1f s)", e.name, e.isp)
}

// Δv returns the Δv in m/s this engine delivers burning from a mass of m0
// down to mf kilograms.
func (e Engine) Δv(m0, mf float64) (float64, error) {
	return TsiolkovskyΔv(e.isp, m0, mf)
}

// PropellantFor returns the propellant in kilograms this engine needs to
// deliver the given Δv with the given final mass.
func (e Engine) PropellantFor(Δv, finalMass float64) (float64, error) {
	return PropellantMass(Δv, e.isp, finalMass)
}

/* Definitions */

// RL10B2 flies on the Delta IV second stage.
var RL10B2 = Engine{"RL10B-2", 465.5, 110.1e3}

// J2 powered the upper stages of the Saturn V.
var J2 = Engine{"J-2", 421, 1033.1e3}

// MerlinVac flies on the Falcon 9 second stage.
var MerlinVac = Engine{"Merlin Vacuum", 348, 981e3}

// AJ10 flew on the Shuttle OMS pods and now on Orion.
var AJ10 = Engine{"AJ10", 316, 26.7e3}

// R4D is the small maneuvering workhorse of many GEO satellites.
var R4D = Engine{"R-4D", 312, 490}

// EngineFromString returns the engine from its name.
func EngineFromString(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "rl10b-2", "rl10":
		return RL10B2, nil
	case "j-2", "j2":
		return J2, nil
	case "merlin vacuum", "merlin":
		return MerlinVac, nil
	case "aj10":
		return AJ10, nil
	case "r-4d", "r4d":
		return R4D, nil
	default:
		return Engine{}, fmt.Errorf("undefined engine '%s'", name)
	}
}
