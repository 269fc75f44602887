// Package pplusr lists the park-and-ride (P+R) stations around Ljubljana.
package pplusr

import "github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/geo"

// Station is a P+R car park.
type Station struct {
	Name     string       `json:"name"`
	Location geo.GeoPoint `json:"location"`
}

func at(name string, lat, lon float64) Station {
	return Station{Name: name, Location: geo.GeoPoint{Latitude: lat, Longitude: lon}}
}

// Existing returns the P+R stations in operation.
func Existing() []Station {
	return []Station{
		at("Stožice P+R", 46.08193178070523, 14.523173128250244),
		at("Dolgi most P+R", 46.03644878723429, 14.462492465882027),
		at("Fužine P+R", 46.05216289561236, 14.566035647181735),
		at("Ig-Banija P+R", 45.95925901901162, 14.527172648350264),
		at("P+R Središče Škofljica", 45.984549611816824, 14.573045134208522),
		at("Ježica P+R", 46.098260477233154, 14.514537553143578),
		at("Barje P+R", 46.026998079960904, 14.500014207251574),
		at("Sinja Gorica (Vrhnika) P+R", 45.977638600736874, 14.308792472252293),
		at("Stanežiče P+R", 46.10754761732814, 14.449335612789403),
		at("Grosuplje P+R", 45.95723414853831, 14.652393760311602),
	}
}

// Proposed returns the stations suggested for the northern and eastern entries.
func Proposed() []Station {
	return []Station{
		at("Šmartno P+R", 46.126144, 14.485276),
		at("Črnuče P+R", 46.104248, 14.545969),
		at("Trzin P+R", 46.119323, 14.551727),
		at("Brinje P+R", 46.090573, 14.597373),
		at("Brezovica pri Ljubljani P+R", 46.025983, 14.430386),
	}
}
