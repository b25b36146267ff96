package main

import (
	"fmt"
	"os"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/objwalk"
	"github.com/spf13/cobra"
)

var (
	walkArrays    bool
	walkMatchKeys []string
	walkAttr      bool
	walkMax       int
)

func init() {
	cmd := newWalkCmd()
	cmd.Flags().BoolVar(&walkArrays, "arrays", false, "Descend into every array value")
	cmd.Flags().StringSliceVar(&walkMatchKeys, "match-keys", nil, "Descend into arrays only at these keys")
	cmd.Flags().BoolVar(&walkAttr, "attr", false, "Report flattened accessor paths instead of segments")
	cmd.Flags().IntVar(&walkMax, "max", 0, "Stop after this many visits (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <file>",
		Short: "List every key a traversal visits",
		Long: `The walk command traverses a JSON document and prints one line per
visited key with its path.

Example:
  objctl walk figure.json
  objctl walk figure.json --arrays --attr
  objctl walk figure.json --match-keys transforms --max 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(args[0])
		},
	}
	return cmd
}

type walkEntry struct {
	Key  any    `json:"key"`
	Path string `json:"path"`
}

func runWalk(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	opts := objwalk.Options{
		WalkArrays:             walkArrays,
		WalkArraysMatchingKeys: walkMatchKeys,
	}
	if walkAttr {
		opts.PathType = objwalk.PathAttr
	}

	var entries []walkEntry
	visits := 0
	err = objwalk.Walk(doc, func(key, parent any, path objwalk.Path) error {
		entry := walkEntry{Key: key}
		if path.Type == objwalk.PathAttr {
			entry.Path = path.Attr
		} else {
			entry.Path = fmt.Sprint(path.Segments)
		}

		if jsonOut {
			entries = append(entries, entry)
		} else {
			fmt.Fprintf(os.Stdout, "%-40s %v\n", entry.Path, entry.Key)
		}

		visits++
		if walkMax > 0 && visits >= walkMax {
			return objwalk.ErrStop
		}
		return nil
	}, opts)
	if err != nil {
		return fmt.Errorf("walk failed: %w", err)
	}

	if jsonOut {
		return printJSON(entries)
	}
	printVerbose("%d keys visited\n", visits)
	return nil
}
