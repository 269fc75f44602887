package internal

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestInitLogging(t *testing.T) {
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
		log.SetPrefix("")
	}()

	runID := InitLogging()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", runID, err)
	}
	if log.Flags()&log.Lmicroseconds == 0 {
		t.Error("microsecond timestamps not enabled")
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.Print("hello")
	if !strings.HasPrefix(buf.String(), "["+runID[:8]+"] ") {
		t.Errorf("log line missing run id prefix: %q", buf.String())
	}

	t.Logf("✓ Run id: %s", runID)
}
