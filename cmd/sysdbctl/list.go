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

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "Scan every object of a kind and print a shallow record per match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(args)
	},
}

func runList(args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	q := ast.List{Kind: kind}
	if err := analyzer.List(q); err != nil {
		return err
	}

	cur := exec.List(db, q, uint64(time.Now().UnixNano()))
	w := jsonfmt.New()
	w.WriteList(cur)
	fmt.Println(string(w.Bytes()))
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
