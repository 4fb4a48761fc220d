package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/sysdb/sysdb/store"
)

// newTestDB builds a fresh, seeded store the way PersistentPreRun does, and
// points the package-level db/logger vars at it so run<Cmd> functions under
// test see the same state the real command tree would.
func newTestDB(t *testing.T) *store.Store {
	t.Helper()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	db = store.New(store.DefaultLimits(), logger)
	seedDemoData(db, logger)
	return db
}

// captureOutput captures stdout while running fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

func assertJSON(t *testing.T, output string) {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(output), &v); err != nil {
		t.Errorf("invalid JSON output: %v\noutput: %s", err, output)
	}
}

func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\ngot: %s", want, output)
		}
	}
}

func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\ngot: %s", dont, output)
		}
	}
}
