package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/objwalk"
	"github.com/spf13/cobra"
)

var (
	copyPrune []string
	copyOut   string
)

func init() {
	cmd := newCopyCmd()
	cmd.Flags().StringSliceVar(&copyPrune, "prune", nil, "Omit these keys and everything beneath them")
	cmd.Flags().StringVarP(&copyOut, "output", "o", "", "Write the copy to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Produce a pruned structural copy",
		Long: `The copy command rebuilds a JSON document into a structurally
independent copy, omitting any keys named by --prune together with the
subtrees beneath them.

Example:
  objctl copy figure.json --prune transforms
  objctl copy figure.json --prune _fullData --prune _fullLayout -o clean.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(args[0])
		},
	}
	return cmd
}

func runCopy(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	var keep objwalk.KeepFunc
	if len(copyPrune) > 0 {
		keep = func(key, parent any, path objwalk.Path) bool {
			name, ok := key.(string)
			return !ok || !slices.Contains(copyPrune, name)
		}
	}

	clone, err := objwalk.Copy(doc, keep)
	if err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	if copyOut == "" {
		return printJSON(clone)
	}

	f, err := os.Create(copyOut)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeJSON(f, clone); err != nil {
		f.Close()
		return fmt.Errorf("failed to write copy: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write copy: %w", err)
	}
	printInfo("Wrote %s\n", copyOut)
	return nil
}
