// Package metrics records how long each pipeline stage took and how many
// entities it produced. The numbers are logged at the end of a run and can be
// exported for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stages, in execution order.
const (
	StageBusLoad   = "bus_load"
	StageBusMerge  = "bus_merge"
	StageBike      = "bike"
	StageGreenZone = "green_zone"
	StageExport    = "export"
)

// Entity kinds.
const (
	EntityStops           = "stops"
	EntityArrivals        = "arrivals"
	EntityArrivalsSkipped = "arrivals_skipped"
	EntityBikeLanes       = "bike_lanes"
	EntityStopsInZone     = "green_zone_stops_inside"
)

type Recorder struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.GaugeVec
	entities      *prometheus.GaugeVec
	lastSuccess   prometheus.Gauge

	order     []string
	durations map[string]time.Duration
}

// NewRecorder creates a recorder backed by its own registry, so several
// recorders can coexist in one process.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "otmlj_stage_duration_seconds",
			Help: "Wall time of the last run of a pipeline stage",
		}, []string{"stage"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "otmlj_entities",
			Help: "Number of entities produced by the last run",
		}, []string{"kind"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "otmlj_last_success_timestamp_seconds",
			Help: "Unix time of the last run that wrote its output",
		}),
		durations: map[string]time.Duration{},
	}
	r.registry.MustRegister(r.stageDuration, r.entities, r.lastSuccess)
	return r
}

// Time starts timing stage; call the returned func when the stage ends.
//
//	defer rec.Time(metrics.StageBike)()
func (r *Recorder) Time(stage string) func() {
	start := time.Now()
	return func() { r.ObserveStage(stage, time.Since(start)) }
}

func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if _, seen := r.durations[stage]; !seen {
		r.order = append(r.order, stage)
	}
	r.durations[stage] = d
	r.stageDuration.WithLabelValues(stage).Set(d.Seconds())
}

func (r *Recorder) SetEntities(kind string, n int) {
	r.entities.WithLabelValues(kind).Set(float64(n))
}

func (r *Recorder) MarkSuccess(now time.Time) {
	r.lastSuccess.Set(float64(now.Unix()))
}

// Stage returns the recorded duration of stage.
func (r *Recorder) Stage(stage string) (time.Duration, bool) {
	d, ok := r.durations[stage]
	return d, ok
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Summary renders the recorded stage timings, one per line, followed by the total.
func (r *Recorder) Summary() string {
	var b strings.Builder
	var total time.Duration
	b.WriteString("Timings:\n")
	for _, stage := range r.order {
		d := r.durations[stage]
		total += d
		fmt.Fprintf(&b, "  %-12s %.1f seconds\n", stage, d.Seconds())
	}
	fmt.Fprintf(&b, "Total time: %.1f seconds", total.Seconds())
	return b.String()
}

func (r *Recorder) LogSummary() {
	for _, line := range strings.Split(r.Summary(), "\n") {
		log.Print(line)
	}
}

// WriteTextfile writes every metric in the text exposition format. An empty
// path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
