package main

import (
	"fmt"
	"strings"

	"github.com/sysdb/sysdb/store"
)

func parseKind(s string) (store.Kind, error) {
	switch strings.ToLower(s) {
	case "host", "hosts":
		return store.KindHost, nil
	case "service", "services":
		return store.KindService, nil
	case "metric", "metrics":
		return store.KindMetric, nil
	case "attribute", "attributes":
		return store.KindAttribute, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want host, service, metric, or attribute)", s)
	}
}
