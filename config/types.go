package config

// InputConfig locates the three datasets. Each entry is a local path or an http(s) URL.
type InputConfig struct {
	BusFeedZip       string `yaml:"busFeedZip" validate:"required"`
	BikeLanesGeoJSON string `yaml:"bikeLanesGeoJSON" validate:"required"`
	GreenZoneGeoJSON string `yaml:"greenZoneGeoJSON" validate:"required"`
}

// BusConfig contains GTFS feed parsing options
type BusConfig struct {
	StopsFile        string `yaml:"stopsFile" validate:"required"`
	StopTimesFile    string `yaml:"stopTimesFile" validate:"required"`
	ServiceDayMarker string `yaml:"serviceDayMarker"`
	// KeepAllTrips disables the service day filter.
	KeepAllTrips bool `yaml:"keepAllTrips"`
}

// OutputConfig contains export options
type OutputConfig struct {
	Directory  string `yaml:"directory" validate:"required"`
	FilePrefix string `yaml:"filePrefix" validate:"required,excludesall=/\\"`
}

// MetricsConfig contains the optional node_exporter textfile target
type MetricsConfig struct {
	Textfile string `yaml:"textfile" validate:"omitempty,endswith=.prom"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input   InputConfig   `yaml:"input" validate:"required"`
	Bus     BusConfig     `yaml:"bus"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}
