// Package visualization defines the document consumed by the Leaflet map.
// Field names and nesting are part of the map's contract.
package visualization

import (
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/bike"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/greenzone"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/pplusr"
)

// Document is the root of the exported JSON.
type Document struct {
	Bus       BusData       `json:"bus"`
	Bike      BikeData      `json:"bike"`
	PPlusR    PPlusRData    `json:"p_plus_r"`
	GreenZone GreenZoneData `json:"green_zone"`
}

type BusData struct {
	StopsWithArrivals []gtfs.BusStopWithStatistics `json:"stops_with_arrivals"`
}

type BikeData struct {
	BikeLanes           []bike.BikeLaneSegment `json:"bike_lanes"`
	TotalLengthInMetres float64                `json:"total_length_in_metres"`
}

type PPlusRData struct {
	Existing []pplusr.Station `json:"existing"`
	Proposed []pplusr.Station `json:"proposed"`
}

type GreenZoneData struct {
	GreenZone greenzone.GreenZone `json:"green_zone"`
}

// NewDocument assembles the document. Nil slices are replaced with empty ones
// so the map always receives arrays.
func NewDocument(
	stops []gtfs.BusStopWithStatistics,
	lanes []bike.BikeLaneSegment,
	totalLaneLength float64,
	existing, proposed []pplusr.Station,
	zone greenzone.GreenZone,
) *Document {
	if stops == nil {
		stops = []gtfs.BusStopWithStatistics{}
	}
	if lanes == nil {
		lanes = []bike.BikeLaneSegment{}
	}
	if existing == nil {
		existing = []pplusr.Station{}
	}
	if proposed == nil {
		proposed = []pplusr.Station{}
	}
	for i := range lanes {
		if lanes[i].Points == nil {
			lanes[i].Points = []geo.GeoPoint{}
		}
	}
	if zone.PolygonBounds == nil {
		zone.PolygonBounds = []geo.GeoPoint{}
	}
	return &Document{
		Bus:       BusData{StopsWithArrivals: stops},
		Bike:      BikeData{BikeLanes: lanes, TotalLengthInMetres: totalLaneLength},
		PPlusR:    PPlusRData{Existing: existing, Proposed: proposed},
		GreenZone: GreenZoneData{GreenZone: zone},
	}
}
