package main

import (
	"log/slog"
	"time"

	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/store"
)

// seedDemoData populates db with a small, illustrative tree so fetch/list/
// lookup have something to show against a freshly started process. A real
// deployment would instead be populated by adapters calling the writer
// API; this CLI has no adapter layer of its own.
func seedDemoData(db *store.Store, logger *slog.Logger) {
	now := uint64(time.Now().UnixNano())
	const backend = "cli-demo"

	if _, err := db.StoreHost("web01", now, backend); err != nil {
		logger.Error("seed: store host", "err", err)
		return
	}
	if _, err := db.StoreService("web01", "nginx", now, backend); err != nil {
		logger.Error("seed: store service", "err", err)
	}
	if _, err := db.StoreMetric("web01", "cpu.load", &store.TimeseriesHandle{StoreType: "rrd", StoreID: "web01/cpu.load"}, now, backend); err != nil {
		logger.Error("seed: store metric", "err", err)
	}
	if _, err := db.StoreAttribute("web01", "region", sysval.NewString("us-east"), now, backend); err != nil {
		logger.Error("seed: store attribute", "err", err)
	}
	if _, err := db.StoreServiceAttribute("web01", "nginx", "version", sysval.NewString("1.27.0"), now, backend); err != nil {
		logger.Error("seed: store service attribute", "err", err)
	}
	if _, err := db.StoreMetricAttribute("web01", "cpu.load", "unit", sysval.NewString("percent"), now, backend); err != nil {
		logger.Error("seed: store metric attribute", "err", err)
	}

	if _, err := db.StoreHost("db01", now+1, backend); err != nil {
		logger.Error("seed: store host", "err", err)
	}
}
