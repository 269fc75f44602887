package gtfs

import (
	"fmt"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/tabular"
)

// Delimiter separates fields in the feed's text tables.
const Delimiter = ','

const (
	stopID = iota
	stopCode
	stopName
	stopLat
	stopLon
)

var stopsSchema = tabular.Schema{"stop_id", "stop_code", "stop_name", "stop_lat", "stop_lon"}

// ParseBusStops parses stops.txt. Any unparsable field aborts the parse.
func ParseBusStops(raw string) ([]BusStop, error) {
	table, err := tabular.Parse(raw, Delimiter)
	if err != nil {
		return nil, fmt.Errorf("stops: %w", err)
	}
	cols, err := stopsSchema.Resolve(table)
	if err != nil {
		return nil, fmt.Errorf("stops: %w", err)
	}

	stops := make([]BusStop, 0, len(table.Rows))
	for i := range table.Rows {
		row := table.Row(i, cols)
		code, err := row.Int(stopCode)
		if err != nil {
			return nil, fmt.Errorf("stops line %d: %w", table.Lines[i], err)
		}
		lat, err := row.Float(stopLat)
		if err != nil {
			return nil, fmt.Errorf("stops line %d: %w", table.Lines[i], err)
		}
		lon, err := row.Float(stopLon)
		if err != nil {
			return nil, fmt.Errorf("stops line %d: %w", table.Lines[i], err)
		}
		stops = append(stops, BusStop{
			ID:       row.String(stopID),
			Code:     code,
			Name:     row.String(stopName),
			Location: geo.GeoPoint{Latitude: lat, Longitude: lon},
		})
	}
	return stops, nil
}
