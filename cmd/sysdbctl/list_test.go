package main

import "testing"

func TestListCommand(t *testing.T) {
	newTestDB(t)

	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "list hosts",
			args:        []string{"host"},
			wantContain: []string{`"name":"web01"`, `"name":"db01"`},
		},
		{
			name:           "list shallow has no service array",
			args:           []string{"host"},
			wantNotContain: []string{`"services"`},
		},
		{
			name:    "list unknown kind",
			args:    []string{"bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := captureOutput(t, func() error {
				return runList(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runList() error = %v, wantErr %v\noutput: %s", err, tt.wantErr, output)
			}
			if !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
