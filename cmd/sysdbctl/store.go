package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/sysdb/sysdb/pkg/sysval"
	"github.com/sysdb/sysdb/query/analyzer"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/query/exec"
	"github.com/sysdb/sysdb/store"
)

var storeBackend string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Write a host, service, metric, or attribute",
}

var storeHostCmd = &cobra.Command{
	Use:   "host <name>",
	Short: "Create or refresh a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStoreHost(args)
	},
}

var storeServiceCmd = &cobra.Command{
	Use:   "service <host> <name>",
	Short: "Create or refresh a service under a host",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStoreService(args)
	},
}

var storeMetricCmd = &cobra.Command{
	Use:   "metric <host> <name>",
	Short: "Create or refresh a metric under a host",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStoreMetric(args)
	},
}

var storeAttributeCmd = &cobra.Command{
	Use:   "attribute <host> <key> <value>",
	Short: "Create or refresh a host-level attribute",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStoreAttribute(args)
	},
}

func runStoreHost(args []string) error {
	return runStore(ast.StoreStmt{Op: ast.StoreHostOp, Host: args[0], Timestamp: now(), Backend: storeBackend})
}

func runStoreService(args []string) error {
	return runStore(ast.StoreStmt{Op: ast.StoreServiceOp, Host: args[0], Service: args[1], Timestamp: now(), Backend: storeBackend})
}

func runStoreMetric(args []string) error {
	return runStore(ast.StoreStmt{Op: ast.StoreMetricOp, Host: args[0], Metric: args[1], Timestamp: now(), Backend: storeBackend})
}

func runStoreAttribute(args []string) error {
	val := inferValue(args[2])
	return runStore(ast.StoreStmt{Op: ast.StoreAttributeOp, Host: args[0], Key: args[1], Value: val, Timestamp: now(), Backend: storeBackend})
}

func init() {
	storeCmd.PersistentFlags().StringVar(&storeBackend, "backend", "cli", "backend identifier recorded on the write")
	storeCmd.AddCommand(storeHostCmd, storeServiceCmd, storeMetricCmd, storeAttributeCmd)
	rootCmd.AddCommand(storeCmd)
}

func now() uint64 { return uint64(time.Now().UnixNano()) }

// inferValue parses a CLI-supplied attribute value as an INTEGER or DECIMAL
// when possible, falling back to STRING; there is no type-annotation syntax
// at this layer.
func inferValue(s string) sysval.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sysval.NewInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return sysval.NewDecimal(f)
	}
	return sysval.NewString(s)
}

func runStore(q ast.StoreStmt) error {
	if err := analyzer.Store(q); err != nil {
		return err
	}
	outcome, err := exec.Store(db, q)
	if err != nil {
		return err
	}
	if outcome == store.Applied {
		printInfo("applied\n")
	} else {
		printInfo("stale: no change\n")
	}
	return nil
}
