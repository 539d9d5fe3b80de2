package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/orbitmech/hohmann"
	"github.com/spf13/viper"
)

// This code only parses the orbit pair and prints the transfer.

const defaultScenario = "~~unset~~"

var (
	scenario   string
	bodyName   string
	asRadii    bool
	engineName string
	isp        float64
	dryMass    float64
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "transfer scenario TOML file")
	flag.StringVar(&bodyName, "body", "Earth", "central body of the transfer")
	flag.BoolVar(&asRadii, "radii", false, "read the positional arguments as radii in km instead of altitudes")
	flag.StringVar(&engineName, "engine", "", "engine for the propellant budget (rl10, j2, merlin, aj10, r4d)")
	flag.Float64Var(&isp, "isp", 0, "specific impulse in seconds for the propellant budget")
	flag.Float64Var(&dryMass, "dry", 0, "dry mass in kg for the propellant budget")
}

func printUsage() {
	fmt.Print("Hohmann Transfer Calculator\n")
	fmt.Print("===========================\n\n")
	fmt.Printf("Usage: %s [options] [initial_alt_km] [final_alt_km]\n\n", os.Args[0])
	fmt.Print("Arguments:\n")
	fmt.Print("  initial_alt_km  Initial orbit altitude in km (default: 400 = LEO)\n")
	fmt.Print("  final_alt_km    Final orbit altitude in km (default: 35786 = GEO)\n\n")
	fmt.Print("Options:\n")
	flag.PrintDefaults()
	fmt.Print("\nExamples:\n")
	fmt.Print("  hohmann                       # LEO to GEO transfer\n")
	fmt.Print("  hohmann 400 20200             # LEO to GPS orbit\n")
	fmt.Print("  hohmann -body mars 300 17000  # from a low Mars orbit\n")
	fmt.Print("  hohmann -engine rl10 -dry 2000 400 35786\n")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	var transfer *hohmann.Transfer
	switch {
	case scenario != defaultScenario:
		transfer = transferFromScenario()
	case flag.NArg() == 0:
		printCommonTransfers()
		fmt.Print("\n")
		transfer = newTransfer(hohmann.LEO, hohmann.GEO)
	case flag.NArg() == 2:
		transfer = transferFromArgs(flag.Arg(0), flag.Arg(1))
	default:
		printUsage()
		os.Exit(1)
	}
	fmt.Print(transfer.Summary())
	printBudget(transfer)
}

func printCommonTransfers() {
	fmt.Print("\n========================================\n")
	fmt.Print("       Common Earth Orbit Transfers\n")
	fmt.Print("========================================\n\n")
	for _, route := range []struct {
		label          string
		initial, final hohmann.Orbit
	}{
		{"LEO (400 km) -> GEO (35,786 km)", hohmann.LEO, hohmann.GEO},
		{"LEO (400 km) -> GPS (20,200 km)", hohmann.LEO, hohmann.GPS},
		{"ISS (420 km) -> GEO (35,786 km)", hohmann.ISS, hohmann.GEO},
	} {
		result, err := hohmann.Hohmann(route.initial.Radius(), route.final.Radius(), hohmann.Earth)
		if err != nil {
			log.Fatalf("Error: %s", err)
		}
		fmt.Printf("%s:\n", route.label)
		fmt.Printf("  Total dv: %.2f m/s\n", result.TotalΔv)
		fmt.Printf("  Time:     %.2f hours\n\n", result.TransferTimeHours())
	}
	fmt.Print("========================================\n")
}

func transferFromArgs(initArg, finalArg string) *hohmann.Transfer {
	initKm, err := strconv.ParseFloat(initArg, 64)
	if err != nil {
		printUsage()
		os.Exit(1)
	}
	finalKm, err := strconv.ParseFloat(finalArg, 64)
	if err != nil {
		printUsage()
		os.Exit(1)
	}
	body, err := hohmann.BodyFromString(bodyName)
	if err != nil {
		log.Fatalf("could not understand body `%s`: %s", bodyName, err)
	}
	return newTransfer(newOrbit(body, initKm*1e3), newOrbit(body, finalKm*1e3))
}

func newOrbit(body hohmann.Body, dist float64) (orbit hohmann.Orbit) {
	var err error
	if asRadii {
		orbit, err = hohmann.NewOrbit(body, dist)
	} else {
		orbit, err = hohmann.NewOrbitFromAltitude(body, dist)
	}
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return
}

func newTransfer(initial, final hohmann.Orbit) *hohmann.Transfer {
	warnIfBelowSurface(initial)
	warnIfBelowSurface(final)
	transfer, err := hohmann.NewTransfer(initial, final)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return transfer
}

func warnIfBelowSurface(orbit hohmann.Orbit) {
	if alt, ok := orbit.Altitude(); ok && alt < 0 {
		log.Printf("[WARNING] %s is below the surface, on collision course with %s", orbit, orbit.Origin.Name())
	}
}

func transferFromScenario() *hohmann.Transfer {
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	body := confReadBody()
	return newTransfer(confReadOrbit("orbits.initial", body), confReadOrbit("orbits.final", body))
}

// confReadBody returns the scenario body, either a catalog name or a custom
// definition with its own gravitational parameter.
func confReadBody() hohmann.Body {
	name := viper.GetString("body.name")
	if name == "" {
		name = bodyName
	}
	if !viper.IsSet("body.gm") {
		body, err := hohmann.BodyFromString(name)
		if err != nil {
			log.Fatalf("could not understand body `%s`: %s", name, err)
		}
		return body
	}
	gm := viper.GetFloat64("body.gm")
	if radius := viper.GetFloat64("body.radius"); radius > 0 {
		body, err := hohmann.NewBodyWithRadius(name, gm, radius)
		if err != nil {
			log.Fatalf("body `%s`: %s", name, err)
		}
		return body
	}
	body, err := hohmann.NewBody(name, gm)
	if err != nil {
		log.Fatalf("body `%s`: %s", name, err)
	}
	return body
}

func confReadOrbit(key string, body hohmann.Body) hohmann.Orbit {
	if viper.IsSet(key + ".radius_km") {
		orbit, err := hohmann.NewOrbit(body, viper.GetFloat64(key+".radius_km")*1e3)
		if err != nil {
			log.Fatalf("%s: %s", key, err)
		}
		return orbit
	}
	orbit, err := hohmann.NewOrbitFromAltitude(body, viper.GetFloat64(key+".altitude_km")*1e3)
	if err != nil {
		log.Fatalf("%s: %s", key, err)
	}
	return orbit
}

// printBudget prints the propellant needed for both burns, second burn first
// since the first burn also pushes the propellant of the second.
func printBudget(transfer *hohmann.Transfer) {
	if engineName == "" && isp == 0 {
		return
	}
	if dryMass <= 0 {
		log.Fatal("propellant budget needs a positive -dry mass")
	}
	if engineName != "" {
		engine, err := hohmann.EngineFromString(engineName)
		if err != nil {
			log.Fatalf("Error: %s", err)
		}
		isp = engine.Isp()
		fmt.Printf("\nPropellant Budget with %s:\n", engine)
	} else {
		fmt.Printf("\nPropellant Budget (Isp %.1f s):\n", isp)
	}
	second, err := hohmann.PropellantMass(transfer.Result.Δv2, isp, dryMass)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	first, err := hohmann.PropellantMass(transfer.Result.Δv1, isp, dryMass+second)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	fmt.Printf("  First burn:  %.1f kg\n", first)
	fmt.Printf("  Second burn: %.1f kg\n", second)
	fmt.Printf("  Total:       %.1f kg for %.1f kg dry\n", first+second, dryMass)
}
