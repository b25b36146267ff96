package main

import (
	"fmt"
	"os"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	treeDepth   int
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display document structure",
		Long: `The tree command displays a hierarchical view of a JSON document.

Example:
  objctl tree figure.json
  objctl tree figure.json --depth 2
  objctl tree figure.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
	return cmd
}

func runTree(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if treeCompact {
		opts.IndentSize = 1
	}

	p := printer.New(os.Stdout, opts)
	if err := p.Print(doc); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
