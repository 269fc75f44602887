package pplusr

import "testing"

func TestStations(t *testing.T) {
	if n := len(Existing()); n != 10 {
		t.Errorf("existing stations = %d, want 10", n)
	}
	if n := len(Proposed()); n != 5 {
		t.Errorf("proposed stations = %d, want 5", n)
	}

	seen := map[string]bool{}
	for _, s := range append(Existing(), Proposed()...) {
		if seen[s.Name] {
			t.Errorf("duplicate station %s", s.Name)
		}
		seen[s.Name] = true
		if s.Location.Latitude < 45.9 || s.Location.Latitude > 46.2 ||
			s.Location.Longitude < 14.3 || s.Location.Longitude > 14.7 {
			t.Errorf("%s is outside the Ljubljana area: %+v", s.Name, s.Location)
		}
	}
}
