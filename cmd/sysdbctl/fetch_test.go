package main

import "testing"

func TestFetchCommand(t *testing.T) {
	newTestDB(t)

	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "fetch host",
			args:        []string{"host", "web01"},
			wantContain: []string{`"name":"web01"`, `"services"`, `"metrics"`, `"attributes"`},
		},
		{
			name:        "fetch service",
			args:        []string{"service", "web01", "nginx"},
			wantContain: []string{`"name":"nginx"`},
		},
		{
			name:           "fetch service not found",
			args:           []string{"service", "web01", "missing"},
			wantErr:        true,
			wantNotContain: []string{`"name"`},
		},
		{
			name:    "fetch host unknown host",
			args:    []string{"host", "nosuchhost"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := captureOutput(t, func() error {
				return runFetch(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runFetch() error = %v, wantErr %v\noutput: %s", err, tt.wantErr, output)
			}
			if !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
