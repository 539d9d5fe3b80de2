package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/orbitmech/hohmann"
)

// This code prints the standard atmosphere at the requested altitudes.

func printUsage() {
	fmt.Print("Standard Atmosphere Table\n")
	fmt.Print("=========================\n\n")
	fmt.Printf("Usage: %s [altitude_km ...]\n\n", os.Args[0])
	fmt.Print("With no arguments, sweeps the table from sea level to the ceiling.\n")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	altitudes := make([]float64, flag.NArg())
	for i, arg := range flag.Args() {
		km, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			printUsage()
			os.Exit(1)
		}
		altitudes[i] = km * 1e3
	}
	if len(altitudes) == 0 {
		for h := 0.0; h < hohmann.AtmosphereCeiling; h += 5e3 {
			altitudes = append(altitudes, h)
		}
		altitudes = append(altitudes, hohmann.AtmosphereCeiling)
	}
	fmt.Printf("%9s  %-14s  %8s  %12s  %10s  %8s\n", "alt (km)", "layer", "T (K)", "P (Pa)", "rho", "a (m/s)")
	for _, h := range altitudes {
		atm, err := hohmann.AtmosphereAt(h)
		if err != nil {
			log.Fatalf("Error: %s", err)
		}
		fmt.Printf("%9.1f  %-14s  %8.2f  %12.3f  %10.6f  %8.2f\n", h/1e3, atm.Layer, atm.Temperature, atm.Pressure, atm.Density, atm.SpeedOfSound)
	}
}
