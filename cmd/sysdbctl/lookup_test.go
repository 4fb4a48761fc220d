package main

import "testing"

func TestLookupCommand(t *testing.T) {
	newTestDB(t)

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "lookup hosts returns full subtrees",
			args:        []string{"host"},
			wantContain: []string{`"name":"web01"`, `"services"`, `"name":"nginx"`},
		},
		{
			name:    "lookup unknown kind",
			args:    []string{"bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := captureOutput(t, func() error {
				return runLookup(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runLookup() error = %v, wantErr %v\noutput: %s", err, tt.wantErr, output)
			}
			if !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
