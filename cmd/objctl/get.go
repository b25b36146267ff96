package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/dashkit/objwalk/internal/datafile"
	jsonpointer "github.com/dustin/go-jsonpointer"
	"github.com/spf13/cobra"
)

var getList bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getList, "list", false, "List every JSON pointer in the document")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> [pointer]",
		Short: "Look up a value by RFC 6901 JSON pointer",
		Long: `The get command resolves an RFC 6901 JSON pointer against a document
and prints the raw JSON found there. With --list it prints every pointer
the document contains instead.

Example:
  objctl get figure.json /data/0/name
  objctl get figure.json --list`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ptr string
			if len(args) > 1 {
				ptr = args[1]
			}
			return runGet(args[0], ptr)
		},
	}
	return cmd
}

func runGet(path, ptr string) error {
	printVerbose("Loading document: %s\n", path)

	raw, err := datafile.ReadUTF8(path)
	if err != nil {
		return err
	}

	if getList {
		pointers, err := jsonpointer.ListPointers(raw)
		if err != nil {
			return fmt.Errorf("failed to list pointers: %w", err)
		}
		slices.Sort(pointers)
		if jsonOut {
			return printJSON(pointers)
		}
		for _, p := range pointers {
			fmt.Fprintln(os.Stdout, p)
		}
		return nil
	}

	if ptr == "" {
		return fmt.Errorf("a pointer argument is required unless --list is given")
	}

	found, err := jsonpointer.Find(raw, ptr)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", ptr, err)
	}
	if found == nil {
		return fmt.Errorf("no value at %q", ptr)
	}

	fmt.Fprintf(os.Stdout, "%s\n", found)
	return nil
}
