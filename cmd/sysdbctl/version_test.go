package main

import "testing"

func TestRunVersion(t *testing.T) {
	output, err := captureOutput(t, func() error {
		runVersion()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, output, []string{"sysdbctl " + version, "commit:", "built:"})
}
