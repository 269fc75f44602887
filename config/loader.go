package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/formatter"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
)

// Environment variables overriding config.yml. They may also come from a .env file.
const (
	EnvBusFeed          = "OTMLJ_BUS_FEED"
	EnvBikeLanes        = "OTMLJ_BIKE_LANES"
	EnvGreenZone        = "OTMLJ_GREEN_ZONE"
	EnvOutputDir        = "OTMLJ_OUTPUT_DIR"
	EnvServiceDayMarker = "OTMLJ_SERVICE_DAY_MARKER"
	EnvMetricsTextfile  = "OTMLJ_METRICS_TEXTFILE"
)

// DefaultPaths are searched in order when no explicit path is given.
var DefaultPaths = []string{"config.yml", "./processing/config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the first readable config file among paths
// (DefaultPaths when none are given) and stores it in Config.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes YAML, applies environment overrides and defaults, then validates.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	override(&cfg.Input.BusFeedZip, EnvBusFeed)
	override(&cfg.Input.BikeLanesGeoJSON, EnvBikeLanes)
	override(&cfg.Input.GreenZoneGeoJSON, EnvGreenZone)
	override(&cfg.Output.Directory, EnvOutputDir)
	override(&cfg.Bus.ServiceDayMarker, EnvServiceDayMarker)
	override(&cfg.Metrics.Textfile, EnvMetricsTextfile)
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Bus.StopsFile == "" {
		cfg.Bus.StopsFile = gtfs.StopsFile
	}
	if cfg.Bus.StopTimesFile == "" {
		cfg.Bus.StopTimesFile = gtfs.StopTimesFile
	}
	if cfg.Bus.ServiceDayMarker == "" {
		cfg.Bus.ServiceDayMarker = gtfs.DefaultServiceDayMarker
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "output-data"
	}
	if cfg.Output.FilePrefix == "" {
		cfg.Output.FilePrefix = formatter.DefaultFilePrefix
	}
}

// TripFilter returns the stop_times filter described by the bus section.
func (b BusConfig) TripFilter() gtfs.TripFilter {
	if b.KeepAllTrips {
		return nil
	}
	return gtfs.ServiceDayMarker(b.ServiceDayMarker)
}
