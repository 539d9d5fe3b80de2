package hohmann

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/soniakeys/meeus/julian"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestExportConfig(t *testing.T) {
	if !(ExportConfig{Filename: "test"}).IsUseless() {
		t.Fatal("config with no formats is not useless")
	}
	if (ExportConfig{Filename: "test", AsCSV: true}).IsUseless() {
		t.Fatal("CSV config is useless")
	}
	transfer, err := NewTransfer(LEO, GEO)
	if err != nil {
		t.Fatal(err)
	}
	if err = Export(ExportConfig{Filename: "test"}, transfer, nil, nil); err == nil {
		t.Fatal("useless config did not return an error")
	}
	if err = Export(ExportConfig{AsCSV: true}, transfer, nil, nil); err == nil {
		t.Fatal("missing file name did not return an error")
	}
}

// dataLines returns the non comment lines of a CSV export, header included.
func dataLines(t *testing.T, path string) []string {
	bts, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(string(bts)), "\n") {
		if !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestExportCSV(t *testing.T) {
	transfer, err := NewTransfer(LEO, GEO)
	if err != nil {
		t.Fatal(err)
	}
	n := 32
	geometry, err := TransferGeometry(transfer, n)
	if err != nil {
		t.Fatal(err)
	}
	timeline, err := CoastTimeline(transfer, n)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	cfg := ExportConfig{Filename: "leo2geo", OutputDir: dir, AsCSV: true}
	if err = Export(cfg, transfer, geometry, timeline); err != nil {
		t.Fatal(err)
	}
	lines := dataLines(t, filepath.Join(dir, "transfer-leo2geo-geometry.csv"))
	if lines[0] != "arc,x,y" {
		t.Fatalf("got header '%s'", lines[0])
	}
	if len(lines) != 1+3*n {
		t.Fatalf("got %d geometry records, expected %d", len(lines)-1, 3*n)
	}
	if !strings.HasPrefix(lines[1], "initial,") {
		t.Fatalf("first record is '%s'", lines[1])
	}
	if !strings.HasPrefix(lines[1+n], "transfer,") {
		t.Fatalf("record %d is '%s'", 1+n, lines[1+n])
	}
	lines = dataLines(t, filepath.Join(dir, "transfer-leo2geo-timeline.csv"))
	if lines[0] != "t,nu,r,x,y,v" {
		t.Fatalf("got header '%s'", lines[0])
	}
	if len(lines) != 1+n {
		t.Fatalf("got %d timeline records, expected %d", len(lines)-1, n)
	}
	// No JSON was requested.
	if _, err = os.Stat(filepath.Join(dir, "transfer-leo2geo-geometry.json")); !os.IsNotExist(err) {
		t.Fatal("JSON artifact written without being enabled")
	}
}

func TestExportJSON(t *testing.T) {
	transfer, err := NewTransfer(LEO, GEO)
	if err != nil {
		t.Fatal(err)
	}
	n := 16
	geometry, err := TransferGeometry(transfer, n)
	if err != nil {
		t.Fatal(err)
	}
	timeline, err := CoastTimeline(transfer, n)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	departure := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	cfg := ExportConfig{Filename: "leo2geo", OutputDir: dir, AsJSON: true, Departure: departure}
	if err = Export(cfg, transfer, geometry, timeline); err != nil {
		t.Fatal(err)
	}
	bts, err := os.ReadFile(filepath.Join(dir, "transfer-leo2geo-geometry.json"))
	if err != nil {
		t.Fatal(err)
	}
	var geo struct {
		Name          string  `json:"name"`
		Body          string  `json:"body"`
		DepartureJDE  float64 `json:"departureJDE"`
		ArrivalJDE    float64 `json:"arrivalJDE"`
		SemiMajorAxis float64 `json:"semiMajorAxisM"`
		Initial       []struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"initial"`
		Transfer []struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"transfer"`
	}
	if err = json.Unmarshal(bts, &geo); err != nil {
		t.Fatal(err)
	}
	if geo.Name != "leo2geo" || geo.Body != "Earth" {
		t.Fatalf("got name '%s' body '%s'", geo.Name, geo.Body)
	}
	if len(geo.Initial) != n || len(geo.Transfer) != n {
		t.Fatalf("got %d/%d points", len(geo.Initial), len(geo.Transfer))
	}
	if !scalar.EqualWithinAbs(geo.SemiMajorAxis, transfer.Result.SemiMajorAxis, 1e-6) {
		t.Fatalf("got a=%f", geo.SemiMajorAxis)
	}
	if !scalar.EqualWithinAbs(geo.DepartureJDE, julian.TimeToJD(departure), 1e-9) {
		t.Fatalf("got departure JDE %f", geo.DepartureJDE)
	}
	// The arrival must be one TOF after the departure.
	days := transfer.Result.TransferTime / 86400
	if !scalar.EqualWithinAbs(geo.ArrivalJDE-geo.DepartureJDE, days, 1e-6) {
		t.Fatalf("epochs are %f days apart, expected %f", geo.ArrivalJDE-geo.DepartureJDE, days)
	}

	bts, err = os.ReadFile(filepath.Join(dir, "transfer-leo2geo-timeline.json"))
	if err != nil {
		t.Fatal(err)
	}
	var tl struct {
		Body    string `json:"body"`
		Samples []struct {
			T  float64 `json:"t"`
			Nu float64 `json:"nu"`
			R  float64 `json:"r"`
			V  float64 `json:"v"`
		} `json:"samples"`
	}
	if err = json.Unmarshal(bts, &tl); err != nil {
		t.Fatal(err)
	}
	if len(tl.Samples) != n {
		t.Fatalf("got %d samples", len(tl.Samples))
	}
	lastSample := tl.Samples[n-1]
	if !scalar.EqualWithinRel(lastSample.T, transfer.Result.TransferTime, 1e-9) {
		t.Fatalf("last sample at t=%f", lastSample.T)
	}
	if !scalar.EqualWithinRel(lastSample.R, GEO.Radius(), 1e-6) {
		t.Fatalf("last sample at r=%f", lastSample.R)
	}
}

func TestExportTimestamp(t *testing.T) {
	transfer, err := NewTransfer(LEO, GEO)
	if err != nil {
		t.Fatal(err)
	}
	geometry, err := TransferGeometry(transfer, 8)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	cfg := ExportConfig{Filename: "stamped", OutputDir: dir, AsCSV: true, Timestamp: true}
	if err = Export(cfg, transfer, geometry, nil); err != nil {
		t.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "transfer-stamped-*-geometry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d stamped artifacts", len(matches))
	}
	// Timeline was nil, so only the geometry artifact exists.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d artifacts", len(entries))
	}
}
