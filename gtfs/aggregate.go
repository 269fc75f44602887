package gtfs

import "fmt"

// MergeArrivals counts arrivals into the stop they reference.
//
// Records are created in stop order first, with an index from stop id to
// record. A repeated stop id keeps the position of its first row and the data
// of its last one.
// Arrivals are then counted through the index; an unknown stop id aborts.
func MergeArrivals(stops []BusStop, arrivals []BusArrival) ([]BusStopWithStatistics, error) {
	out := make([]BusStopWithStatistics, 0, len(stops))
	index := make(map[string]int, len(stops))
	for _, s := range stops {
		if i, seen := index[s.ID]; seen {
			out[i].BusStop = s
			continue
		}
		index[s.ID] = len(out)
		out = append(out, BusStopWithStatistics{BusStop: s})
	}

	for _, a := range arrivals {
		i, ok := index[a.StopID]
		if !ok {
			return nil, fmt.Errorf("%w: trip %s references stop %q", ErrUnknownStopReference, a.TripID, a.StopID)
		}
		out[i].ArrivalsPerHour.Add(a.ArrivalTime)
	}
	return out, nil
}

// TotalArrivals sums every histogram bucket of every stop.
func TotalArrivals(stops []BusStopWithStatistics) int {
	total := 0
	for i := range stops {
		total += stops[i].ArrivalsPerHour.Total()
	}
	return total
}
