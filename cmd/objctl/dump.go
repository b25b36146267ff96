package main

import (
	"os"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpDepth int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth to dump (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the decoded document with Go type annotations",
		Long: `The dump command prints the decoded document with concrete Go types
and lengths visible, which is useful when diagnosing why a walk or copy does
not see the structure you expect (e.g. a typed map arriving as a leaf).

Example:
  objctl dump figure.json
  objctl dump figure.json --depth 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
	return cmd
}

func runDump(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	conf := spew.ConfigState{Indent: "  ", MaxDepth: dumpDepth, SortKeys: true}
	conf.Fdump(os.Stdout, doc)
	return nil
}
