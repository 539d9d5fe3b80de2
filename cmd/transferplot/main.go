package main

import (
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/orbitmech/hohmann"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code samples a transfer and exports the plotting artifacts.

const (
	defaultScenario = "~~unset~~"
	dtFormat        = "2006-01-02 15:04:05"
)

var (
	scenario  string
	bodyName  string
	r1km      float64
	r2km      float64
	departure string
	points    int
	steps     int
	name      string
	asCSV     bool
	asJSON    bool
	timestamp bool
	outputDir string
	bearing   float64
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "transfer scenario TOML file")
	flag.StringVar(&bodyName, "body", "Earth", "central body of the transfer")
	flag.Float64Var(&r1km, "r1", 0, "initial orbit radius in km")
	flag.Float64Var(&r2km, "r2", 0, "final orbit radius in km")
	flag.StringVar(&departure, "departure", "", "departure epoch, either `"+dtFormat+"` UTC or a Julian date")
	flag.IntVar(&points, "points", 360, "points per plotted arc")
	flag.IntVar(&steps, "steps", 500, "samples along the coast timeline")
	flag.StringVar(&name, "name", "plot", "base name of the artifacts")
	flag.BoolVar(&asCSV, "csv", false, "export as CSV")
	flag.BoolVar(&asJSON, "json", false, "export as JSON")
	flag.BoolVar(&timestamp, "timestamp", false, "stamp the creation time into the file names")
	flag.StringVar(&outputDir, "dir", "", "destination directory of the artifacts")
	flag.Float64Var(&bearing, "bearing", 0, "rotate the plot so the departure sits on this bearing in degrees")
}

func main() {
	flag.Parse()
	var initial, final hohmann.Orbit
	if scenario != defaultScenario {
		initial, final = orbitsFromScenario()
	} else {
		body, err := hohmann.BodyFromString(bodyName)
		if err != nil {
			log.Fatalf("could not understand body `%s`: %s", bodyName, err)
		}
		if initial, err = hohmann.NewOrbit(body, r1km*1e3); err != nil {
			log.Fatalf("-r1: %s", err)
		}
		if final, err = hohmann.NewOrbit(body, r2km*1e3); err != nil {
			log.Fatalf("-r2: %s", err)
		}
	}
	transfer, err := hohmann.NewTransfer(initial, final)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	geometry, err := hohmann.TransferGeometry(transfer, points)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	timeline, err := hohmann.CoastTimeline(transfer, steps)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	if bearing != 0 {
		geometry.Rotate(hohmann.Deg2rad(bearing))
	}
	cfg := hohmann.ExportConfig{
		Filename:  name,
		OutputDir: outputDir,
		AsCSV:     asCSV,
		AsJSON:    asJSON,
		Timestamp: timestamp,
		Departure: parseEpoch(departure),
	}
	if err := hohmann.Export(cfg, transfer, geometry, timeline); err != nil {
		log.Fatalf("Error: %s", err)
	}
}

// parseEpoch reads either a Julian date or a calendar time, and keeps the
// zero value when unset so the export stamps the current time.
func parseEpoch(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if jd, err := strconv.ParseFloat(value, 64); err == nil {
		return julian.JDToTime(jd)
	}
	dt, err := time.Parse(dtFormat, value)
	if err != nil {
		log.Fatalf("could not read departure `%s`: %s", value, err)
	}
	return dt
}

func orbitsFromScenario() (initial, final hohmann.Orbit) {
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	body := confReadBody()
	return confReadOrbit("orbits.initial", body), confReadOrbit("orbits.final", body)
}

func confReadBody() hohmann.Body {
	confName := viper.GetString("body.name")
	if confName == "" {
		confName = bodyName
	}
	if !viper.IsSet("body.gm") {
		body, err := hohmann.BodyFromString(confName)
		if err != nil {
			log.Fatalf("could not understand body `%s`: %s", confName, err)
		}
		return body
	}
	gm := viper.GetFloat64("body.gm")
	if radius := viper.GetFloat64("body.radius"); radius > 0 {
		body, err := hohmann.NewBodyWithRadius(confName, gm, radius)
		if err != nil {
			log.Fatalf("body `%s`: %s", confName, err)
		}
		return body
	}
	body, err := hohmann.NewBody(confName, gm)
	if err != nil {
		log.Fatalf("body `%s`: %s", confName, err)
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
