package gtfs

import (
	"fmt"
	"strings"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/tabular"
)

// DefaultServiceDayMarker is the service identifier embedded in LPP trip ids
// for 2024-05-08.
const DefaultServiceDayMarker = "ddfb999e-c766-48e1-a5c5-e97e5b09e19c"

// TripFilter decides whether a stop_times row belongs to the processed day.
type TripFilter func(tripID string) bool

// ServiceDayMarker keeps trips whose id contains marker. An empty marker keeps everything.
func ServiceDayMarker(marker string) TripFilter {
	return func(tripID string) bool {
		return strings.Contains(tripID, marker)
	}
}

// ParseStats describes how many stop_times rows were read and kept.
type ParseStats struct {
	Rows     int
	Retained int
}

// Skipped is the number of rows rejected by the trip filter.
func (s ParseStats) Skipped() int { return s.Rows - s.Retained }

const (
	stTripID = iota
	stArrivalTime
	stDepartureTime
	stStopID
	stStopSequence
)

var stopTimesSchema = tabular.Schema{"trip_id", "arrival_time", "departure_time", "stop_id", "stop_sequence"}

// ParseBusArrivals parses stop_times.txt, keeping rows accepted by keep.
// A nil filter keeps every row.
func ParseBusArrivals(raw string, keep TripFilter) ([]BusArrival, error) {
	arrivals, _, err := ParseBusArrivalsWithStats(raw, keep)
	return arrivals, err
}

// ParseBusArrivalsWithStats is ParseBusArrivals that also reports row counts.
func ParseBusArrivalsWithStats(raw string, keep TripFilter) ([]BusArrival, ParseStats, error) {
	var stats ParseStats

	table, err := tabular.Parse(raw, Delimiter)
	if err != nil {
		return nil, stats, fmt.Errorf("stop_times: %w", err)
	}
	cols, err := stopTimesSchema.Resolve(table)
	if err != nil {
		return nil, stats, fmt.Errorf("stop_times: %w", err)
	}

	stats.Rows = len(table.Rows)
	var arrivals []BusArrival
	for i := range table.Rows {
		row := table.Row(i, cols)
		trip := row.String(stTripID)
		if keep != nil && !keep(trip) {
			continue
		}

		arr, err := ParseTimeOfDay(row.String(stArrivalTime))
		if err != nil {
			return nil, stats, fmt.Errorf("stop_times line %d: arrival_time: %w", table.Lines[i], err)
		}
		dep, err := ParseTimeOfDay(row.String(stDepartureTime))
		if err != nil {
			return nil, stats, fmt.Errorf("stop_times line %d: departure_time: %w", table.Lines[i], err)
		}
		seq, err := row.Int(stStopSequence)
		if err != nil {
			return nil, stats, fmt.Errorf("stop_times line %d: %w", table.Lines[i], err)
		}

		arrivals = append(arrivals, BusArrival{
			TripID:        trip,
			ArrivalTime:   arr,
			DepartureTime: dep,
			StopID:        row.String(stStopID),
			StopSequence:  seq,
		})
	}
	stats.Retained = len(arrivals)
	return arrivals, stats, nil
}
