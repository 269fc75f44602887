package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Feed table names read by the pipeline.
const (
	StopsFile     = "stops.txt"
	StopTimesFile = "stop_times.txt"
)

// ReadFeedFiles extracts the named tables from an in-memory GTFS zip.
// Entry names match case-insensitively and may sit in a sub-directory.
func ReadFeedFiles(zipBytes []byte, names ...string) (map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("open feed archive: %w", err)
	}
	return readFeedFiles(zr.File, names)
}

// ReadFeedFilesFromPath opens a local GTFS zip and extracts the named tables.
func ReadFeedFilesFromPath(zipPath string, names ...string) (map[string][]byte, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open feed archive: %w", err)
	}
	defer zr.Close()
	return readFeedFiles(zr.File, names)
}

func readFeedFiles(files []*zip.File, names []string) (map[string][]byte, error) {
	wanted := make(map[string]string, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = n
	}

	out := make(map[string][]byte, len(names))
	for _, f := range files {
		name, ok := wanted[strings.ToLower(path.Base(f.Name))]
		if !ok {
			continue
		}
		if _, dup := out[name]; dup {
			continue
		}
		data, err := readZipEntry(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		out[name] = data
	}

	for _, n := range names {
		if _, ok := out[n]; !ok {
			return nil, fmt.Errorf("feed archive has no %s", n)
		}
	}
	return out, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
