package hohmann

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

const dateFormat = "2006-01-02 15:04:05"

// ExportConfig configures the exporting of transfer artifacts.
type ExportConfig struct {
	Filename  string    // base name of the artifacts
	OutputDir string    // destination directory, current directory when empty
	AsCSV     bool
	AsJSON    bool
	Timestamp bool      // stamp the creation time into the file names
	Departure time.Time // epoch of the first burn, now (UTC) when zero
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

// Export writes the geometry and timeline artifacts of a transfer as
// configured. Either of geometry and timeline may be nil to skip it.
func Export(cfg ExportConfig, t *Transfer, geometry *PlotData, timeline []CoastSample) error {
	if cfg.IsUseless() {
		return errors.New("export config would not export anything")
	}
	if cfg.Filename == "" {
		return errors.New("export config has no file name")
	}
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	departure := cfg.Departure
	if departure.IsZero() {
		departure = time.Now().UTC()
	}
	arrival := departure.Add(t.Result.Duration())
	base := fmt.Sprintf("transfer-%s", cfg.Filename)
	if cfg.Timestamp {
		now := time.Now()
		base = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", base, now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second())
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "export", cfg.Filename)

	if geometry != nil {
		if cfg.AsCSV {
			path := filepath.Join(outputDir, base+"-geometry.csv")
			if err := writeGeometryCSV(path, t, geometry); err != nil {
				return err
			}
			klog.Log("level", "info", "subsys", "export", "artifact", path, "points", len(geometry.Transfer))
		}
		if cfg.AsJSON {
			path := filepath.Join(outputDir, base+"-geometry.json")
			doc := geometryJSON{
				Name:          cfg.Filename,
				Body:          t.Initial.Origin.name,
				epochsJSON:    newEpochsJSON(departure, arrival),
				SemiMajorAxis: t.Result.SemiMajorAxis,
				Initial:       points2JSON(geometry.Initial),
				Transfer:      points2JSON(geometry.Transfer),
				Final:         points2JSON(geometry.Final),
			}
			if err := writeJSON(path, doc); err != nil {
				return err
			}
			klog.Log("level", "info", "subsys", "export", "artifact", path, "points", len(geometry.Transfer))
		}
	}
	if timeline != nil {
		if cfg.AsCSV {
			path := filepath.Join(outputDir, base+"-timeline.csv")
			if err := writeTimelineCSV(path, timeline, departure, arrival); err != nil {
				return err
			}
			klog.Log("level", "info", "subsys", "export", "artifact", path, "samples", len(timeline))
		}
		if cfg.AsJSON {
			path := filepath.Join(outputDir, base+"-timeline.json")
			doc := timelineJSON{
				Name:       cfg.Filename,
				Body:       t.Initial.Origin.name,
				epochsJSON: newEpochsJSON(departure, arrival),
				Samples:    make([]sampleJSON, len(timeline)),
			}
			for i, s := range timeline {
				doc.Samples[i] = sampleJSON{s.Elapsed, s.TrueAnomaly, s.Radius, s.X, s.Y, s.Velocity}
			}
			if err := writeJSON(path, doc); err != nil {
				return err
			}
			klog.Log("level", "info", "subsys", "export", "artifact", path, "samples", len(timeline))
		}
	}
	return nil
}

func writeGeometryCSV(path string, t *Transfer, d *PlotData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <arc> <x> <y>
#   Arc is one of initial, transfer, final
#   Positions in meters, in the plane of the transfer
#   Transfer: %s -> %s
arc,x,y
`, time.Now().UTC(), t.Initial, t.Final))
	for _, arc := range []struct {
		name string
		pts  []Point
	}{{"initial", d.Initial}, {"transfer", d.Transfer}, {"final", d.Final}} {
		for _, pt := range arc.pts {
			f.WriteString(fmt.Sprintf("%s,%f,%f\n", arc.name, pt.X, pt.Y))
		}
	}
	return nil
}

func writeTimelineCSV(path string, timeline []CoastSample, departure, arrival time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <t> <nu> <r> <x> <y> <v>
#   Time in seconds since the first burn, true anomaly in radians
#   Positions in meters, velocity in m/s
#   Departure (UTC): %s (JDE %.6f)
#   Arrival (UTC): %s (JDE %.6f)
t,nu,r,x,y,v
`, time.Now().UTC(), departure.Format(dateFormat), julian.TimeToJD(departure), arrival.Format(dateFormat), julian.TimeToJD(arrival)))
	for _, s := range timeline {
		f.WriteString(fmt.Sprintf("%f,%f,%f,%f,%f,%f\n", s.Elapsed, s.TrueAnomaly, s.Radius, s.X, s.Y, s.Velocity))
	}
	return nil
}

func writeJSON(path string, doc interface{}) error {
	bts, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(bts)
	return err
}

// epochsJSON carries the burn epochs in both calendar and Julian date form.
type epochsJSON struct {
	DepartureUTC string  `json:"departureUTC"`
	DepartureJDE float64 `json:"departureJDE"`
	ArrivalUTC   string  `json:"arrivalUTC"`
	ArrivalJDE   float64 `json:"arrivalJDE"`
}

func newEpochsJSON(departure, arrival time.Time) epochsJSON {
	return epochsJSON{
		DepartureUTC: departure.Format(dateFormat),
		DepartureJDE: julian.TimeToJD(departure),
		ArrivalUTC:   arrival.Format(dateFormat),
		ArrivalJDE:   julian.TimeToJD(arrival),
	}
}

// geometryJSON definition.
type geometryJSON struct {
	Name string `json:"name"`
	Body string `json:"body"`
	epochsJSON
	SemiMajorAxis float64     `json:"semiMajorAxisM"`
	Initial       []pointJSON `json:"initial"`
	Transfer      []pointJSON `json:"transfer"`
	Final         []pointJSON `json:"final"`
}

// pointJSON definition.
type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func points2JSON(pts []Point) []pointJSON {
	out := make([]pointJSON, len(pts))
	for i, pt := range pts {
		out[i] = pointJSON{pt.X, pt.Y}
	}
	return out
}

// timelineJSON definition.
type timelineJSON struct {
	Name string `json:"name"`
	Body string `json:"body"`
	epochsJSON
	Samples []sampleJSON `json:"samples"`
}

// sampleJSON definition.
type sampleJSON struct {
	T  float64 `json:"t"`
	Nu float64 `json:"nu"`
	R  float64 `json:"r"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	V  float64 `json:"v"`
}
