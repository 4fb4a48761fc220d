package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sysdb/sysdb/jsonfmt"
	"github.com/sysdb/sysdb/query/analyzer"
	"github.com/sysdb/sysdb/query/ast"
	"github.com/sysdb/sysdb/query/exec"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <kind> <host> [name]",
	Short: "Dereference a single host/service/metric/attribute path",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(args)
	},
}

func runFetch(args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 3 {
		name = args[2]
	}

	q := ast.Fetch{Kind: kind, Host: args[1], Name: name}
	if err := analyzer.Fetch(q); err != nil {
		return err
	}

	rec, err := exec.Fetch(db, q, uint64(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	w := jsonfmt.New()
	w.WriteFetch(rec)
	fmt.Println(string(w.Bytes()))
	return nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
