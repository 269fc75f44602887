// Package pipeline runs the processing stages in order and assembles the
// visualization document.
package pipeline

import (
	"fmt"
	"log"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/bike"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/greenzone"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/metrics"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/pplusr"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/visualization"
)

// Source provides the raw inputs. Each method is called once per run.
type Source interface {
	// BusFeed returns the contents of stops.txt and stop_times.txt.
	BusFeed() (stops, stopTimes []byte, err error)
	BikeLanes() ([]byte, error)
	GreenZone() ([]byte, error)
}

type Options struct {
	// TripFilter selects the stop_times rows to keep. Nil keeps every row.
	TripFilter gtfs.TripFilter
	// Metrics receives stage timings and entity counts. A fresh recorder is
	// used when nil.
	Metrics *metrics.Recorder
}

// StageError reports which stage aborted the run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// Run executes bus loading, arrival aggregation, bike lane parsing and the
// green zone analysis, then assembles the document with the P+R stations.
// The first failing stage aborts the run.
func Run(src Source, opts Options) (*visualization.Document, error) {
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	stop := rec.Time(metrics.StageBusLoad)
	stops, arrivals, err := loadBus(src, opts.TripFilter, rec)
	stop()
	if err != nil {
		return nil, stageErr(metrics.StageBusLoad, err)
	}

	stop = rec.Time(metrics.StageBusMerge)
	merged, err := gtfs.MergeArrivals(stops, arrivals)
	stop()
	if err != nil {
		return nil, stageErr(metrics.StageBusMerge, err)
	}
	log.Printf("Merged %d arrivals into %d stops", gtfs.TotalArrivals(merged), len(merged))

	stop = rec.Time(metrics.StageBike)
	lanes, totalLength, err := loadBike(src)
	stop()
	if err != nil {
		return nil, stageErr(metrics.StageBike, err)
	}
	rec.SetEntities(metrics.EntityBikeLanes, len(lanes))

	stop = rec.Time(metrics.StageGreenZone)
	zone, err := loadGreenZone(src, merged)
	stop()
	if err != nil {
		return nil, stageErr(metrics.StageGreenZone, err)
	}
	rec.SetEntities(metrics.EntityStopsInZone, zone.StopsInside)

	return visualization.NewDocument(merged, lanes, totalLength, pplusr.Existing(), pplusr.Proposed(), zone), nil
}

func loadBus(src Source, keep gtfs.TripFilter, rec *metrics.Recorder) ([]gtfs.BusStop, []gtfs.BusArrival, error) {
	rawStops, rawStopTimes, err := src.BusFeed()
	if err != nil {
		return nil, nil, err
	}

	stops, err := gtfs.ParseBusStops(string(rawStops))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", gtfs.StopsFile, err)
	}
	arrivals, stats, err := gtfs.ParseBusArrivalsWithStats(string(rawStopTimes), keep)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", gtfs.StopTimesFile, err)
	}

	rec.SetEntities(metrics.EntityStops, len(stops))
	rec.SetEntities(metrics.EntityArrivals, stats.Retained)
	rec.SetEntities(metrics.EntityArrivalsSkipped, stats.Skipped())
	log.Printf("Loaded %d bus stops and %d arrivals (%d rows outside the service day)",
		len(stops), stats.Retained, stats.Skipped())
	return stops, arrivals, nil
}

func loadBike(src Source) ([]bike.BikeLaneSegment, float64, error) {
	raw, err := src.BikeLanes()
	if err != nil {
		return nil, 0, err
	}
	lanes, total, err := bike.ParseBikeLanes(raw)
	if err != nil {
		return nil, 0, err
	}
	log.Printf("Loaded %d bike lane segments, declared length %.1f m, measured %.1f m",
		len(lanes), total, bike.MeasuredNetworkLength(lanes))
	return lanes, total, nil
}

func loadGreenZone(src Source, stops []gtfs.BusStopWithStatistics) (greenzone.GreenZone, error) {
	raw, err := src.GreenZone()
	if err != nil {
		return greenzone.GreenZone{}, err
	}
	zone, err := greenzone.ParseGreenZone(raw, stops)
	if err != nil {
		return greenzone.GreenZone{}, err
	}
	log.Printf("Green zone covers %.0f m2 with %d stops and %d daily arrivals",
		zone.AreaInSquareMetres, zone.StopsInside, zone.TotalArrivalsPerDayInsideZone)
	return zone, nil
}
