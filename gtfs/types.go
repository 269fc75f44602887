package gtfs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
)

var (
	// ErrInvalidTimeOfDay is returned for an "HH:MM:SS" value outside the accepted range.
	ErrInvalidTimeOfDay = errors.New("invalid H:M:S string")
	// ErrUnknownStopReference is returned when an arrival names a stop_id missing from stops.txt.
	ErrUnknownStopReference = errors.New("unknown stop reference")
)

// TimeOfDay is an hour and minute of the service day. Hour is already shifted, see scheduleHour.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a colon separated "HH:MM:SS" value. Seconds are not read.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, raw)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeOfDay, raw, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeOfDay, raw, err)
	}

	hour := scheduleHour(h)
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q: hour out of range", ErrInvalidTimeOfDay, raw)
	}
	if m < 0 || m > 60 {
		return TimeOfDay{}, fmt.Errorf("%w: %q: minute out of range", ErrInvalidTimeOfDay, raw)
	}
	return TimeOfDay{Hour: hour, Minute: m}, nil
}

// MarshalJSON encodes the time as [hour, minute].
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.Hour, t.Minute})
}

// BusStop is a row of stops.txt.
type BusStop struct {
	ID       string       `json:"id"`
	Code     int          `json:"code"`
	Name     string       `json:"name"`
	Location geo.GeoPoint `json:"location"`
}

// BusArrival is a row of stop_times.txt for the selected service day.
type BusArrival struct {
	TripID        string    `json:"trip_id"`
	ArrivalTime   TimeOfDay `json:"arrival_time"`
	DepartureTime TimeOfDay `json:"departure_time"`
	StopID        string    `json:"stop_id"`
	StopSequence  int       `json:"stop_sequence"`
}

// HourlyArrivalHistogram counts arrivals per bucket, see ArrivalBucket.
type HourlyArrivalHistogram [HoursPerDay]int

// Add counts one arrival.
func (h *HourlyArrivalHistogram) Add(t TimeOfDay) {
	h[ArrivalBucket(t)]++
}

// Total returns the number of arrivals over the whole day.
func (h *HourlyArrivalHistogram) Total() int {
	sum := 0
	for _, n := range h {
		sum += n
	}
	return sum
}

// BusStopWithStatistics is a stop with its daily arrival histogram.
type BusStopWithStatistics struct {
	BusStop
	ArrivalsPerHour HourlyArrivalHistogram `json:"arrivals_per_hour"`
}
