package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/config"
	"github.com/Arnes-Hackathon-SNAKS/optimizacija-trajnostne-mobilnostni-v-ljubljani/gtfs"
)

// fetcher reads input files from URLs or local paths.
type fetcher struct {
	httpClient *http.Client
}

func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// fetch returns the contents of urlOrPath. Anything that is not an http(s)
// URL is treated as a local path.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// inputSource serves the configured inputs to the pipeline.
type inputSource struct {
	fetcher *fetcher
	input   config.InputConfig
	bus     config.BusConfig
}

func (s *inputSource) BusFeed() ([]byte, []byte, error) {
	archive, err := s.fetcher.fetch(s.input.BusFeedZip)
	if err != nil {
		return nil, nil, fmt.Errorf("bus feed: %w", err)
	}
	files, err := gtfs.ReadFeedFiles(archive, s.bus.StopsFile, s.bus.StopTimesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("bus feed %s: %w", s.input.BusFeedZip, err)
	}
	return files[s.bus.StopsFile], files[s.bus.StopTimesFile], nil
}

func (s *inputSource) BikeLanes() ([]byte, error) {
	data, err := s.fetcher.fetch(s.input.BikeLanesGeoJSON)
	if err != nil {
		return nil, fmt.Errorf("bike lanes: %w", err)
	}
	return data, nil
}

func (s *inputSource) GreenZone() ([]byte, error) {
	data, err := s.fetcher.fetch(s.input.GreenZoneGeoJSON)
	if err != nil {
		return nil, fmt.Errorf("green zone: %w", err)
	}
	return data, nil
}
