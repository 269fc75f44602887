package internal

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// InitLogging sends the standard logger to stdout and tags every line with a
// short run id so interleaved cron runs can be told apart. It returns the full id.
func InitLogging() string {
	runID := uuid.NewString()
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("[" + runID[:8] + "] ")
	return runID
}
