package visualization

import (
	"testing"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/bike"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/greenzone"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/pplusr"
)

func TestNewDocument_FillsEmptySlices(t *testing.T) {
	doc := NewDocument(nil, []bike.BikeLaneSegment{{}}, 0, nil, nil, greenzone.GreenZone{})

	if doc.Bus.StopsWithArrivals == nil {
		t.Error("stops should be an empty slice")
	}
	if doc.Bike.BikeLanes[0].Points == nil {
		t.Error("lane points should be an empty slice")
	}
	if doc.PPlusR.Existing == nil || doc.PPlusR.Proposed == nil {
		t.Error("P+R lists should be empty slices")
	}
	if doc.GreenZone.GreenZone.PolygonBounds == nil {
		t.Error("polygon bounds should be an empty slice")
	}
}

func TestNewDocument_Sections(t *testing.T) {
	zone := greenzone.GreenZone{AreaInSquareMetres: 10, TotalArrivalsPerDayInsideZone: 3}
	doc := NewDocument(nil, nil, 99.5, pplusr.Existing(), pplusr.Proposed(), zone)

	if doc.Bike.TotalLengthInMetres != 99.5 {
		t.Errorf("total length = %f", doc.Bike.TotalLengthInMetres)
	}
	if len(doc.PPlusR.Existing) != 10 || len(doc.PPlusR.Proposed) != 5 {
		t.Errorf("p+r = %d/%d", len(doc.PPlusR.Existing), len(doc.PPlusR.Proposed))
	}
	if doc.GreenZone.GreenZone.TotalArrivalsPerDayInsideZone != 3 {
		t.Errorf("zone = %+v", doc.GreenZone.GreenZone)
	}
}
