package main

import (
	"testing"

	"github.com/sysdb/sysdb/store"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    store.Kind
		wantErr bool
	}{
		{"host", store.KindHost, false},
		{"hosts", store.KindHost, false},
		{"Service", store.KindService, false},
		{"METRICS", store.KindMetric, false},
		{"attribute", store.KindAttribute, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		got, err := parseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("parseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
