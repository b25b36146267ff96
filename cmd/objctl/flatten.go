package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/objwalk"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFlattenCmd())
}

func newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <file>",
		Short: "List every leaf by its accessor path",
		Long: `The flatten command walks a JSON document with array descent enabled
and prints every leaf value keyed by its flattened accessor path.

Example:
  objctl flatten figure.json
  objctl flatten figure.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(args[0])
		},
	}
	return cmd
}

func runFlatten(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	flat, err := objwalk.Flatten(doc)
	if err != nil {
		return fmt.Errorf("flatten failed: %w", err)
	}

	if jsonOut {
		return printJSON(flat)
	}

	for _, key := range slices.Sorted(maps.Keys(flat)) {
		fmt.Fprintf(os.Stdout, "%-40s %v\n", key, flat[key])
	}
	printVerbose("%d leaves\n", len(flat))
	return nil
}
