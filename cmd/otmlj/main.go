package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/config"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/formatter"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/internal"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/metrics"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: search config.yml, ./processing/config.yml)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	marker := flag.String("marker", "", "service day marker in trip ids (overrides config)")
	toStdout := flag.Bool("stdout", false, "print the JSON document instead of writing a file")
	flag.Parse()

	runID := internal.InitLogging()

	var paths []string
	if *configPath != "" {
		paths = []string{*configPath}
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *outDir != "" {
		cfg.Output.Directory = *outDir
	}
	if *marker != "" {
		cfg.Bus.ServiceDayMarker = *marker
	}
	log.Printf("Run %s: bus feed %s", runID, cfg.Input.BusFeedZip)

	rec := metrics.NewRecorder()
	src := &inputSource{fetcher: newFetcher(), input: cfg.Input, bus: cfg.Bus}

	doc, err := pipeline.Run(src, pipeline.Options{
		TripFilter: cfg.Bus.TripFilter(),
		Metrics:    rec,
	})
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}

	stop := rec.Time(metrics.StageExport)
	data, err := formatter.NewDocumentBuilder().BuildJSON(doc)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	now := time.Now()
	if *toStdout {
		fmt.Println(string(data))
	} else {
		path, err := formatter.WriteToDirectory(data, cfg.Output.Directory, cfg.Output.FilePrefix, now)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("Wrote %s", path)
	}
	stop()
	rec.MarkSuccess(now)

	if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Printf("Warning: %v", err)
	}

	log.Print("Finished!")
	rec.LogSummary()
}
