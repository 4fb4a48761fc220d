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

var lookupCmd = &cobra.Command{
	Use:   "lookup <kind>",
	Short: "Scan every object of a kind and print a full subtree per match",
	Long: `lookup scans every object of the given kind and, for each one,
prints its full subtree. This CLI has no surface-syntax parser for the
matcher/filter language, so it always runs with an always-true matcher
and filter; use the library directly to run a constrained LOOKUP.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(args)
	},
}

func runLookup(args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	q := ast.Lookup{Kind: kind}
	if err := analyzer.Lookup(q); err != nil {
		return err
	}

	cur := exec.Lookup(db, q, uint64(time.Now().UnixNano()))
	w := jsonfmt.New()
	w.WriteLookup(cur)
	fmt.Println(string(w.Bytes()))
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
