package main

import (
	"fmt"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/objwalk"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAlignCmd())
}

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align <file>",
		Short: "Normalize row lengths of an array-of-arrays document",
		Long: `The align command reads a JSON document whose top level is an array
of arrays (a column table) and pads every row to the longest row's length
with nulls, the normalization crossfilter dimensions require.

Example:
  objctl align columns.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(args[0])
		},
	}
	return cmd
}

func runAlign(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	outer, ok := doc.([]any)
	if !ok {
		return fmt.Errorf("align requires a top-level array, got %T", doc)
	}

	rows := make([][]any, len(outer))
	for i, row := range outer {
		inner, ok := row.([]any)
		if !ok {
			return fmt.Errorf("row %d is not an array, got %T", i, row)
		}
		rows[i] = inner
	}

	aligned := objwalk.Align(rows)

	out := make([]any, len(aligned))
	for i, row := range aligned {
		out[i] = row
	}
	return printJSON(out)
}
