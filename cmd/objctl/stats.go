package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dashkit/objwalk/internal/datafile"
	"github.com/dashkit/objwalk/pkg/objwalk"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Report document shape statistics",
		Long: `The stats command walks a JSON document once and reports how many
mappings, arrays, and leaves it contains and how deeply it nests.

Example:
  objctl stats figure.json
  objctl stats figure.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
	return cmd
}

func runStats(path string) error {
	printVerbose("Loading document: %s\n", path)

	doc, err := datafile.Load(path)
	if err != nil {
		return err
	}

	stats, err := objwalk.Count(doc)
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if jsonOut {
		return printJSON(stats)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "count"})
	table.Append([]string{"keys", strconv.FormatUint(stats.Keys, 10)})
	table.Append([]string{"maps", strconv.FormatUint(stats.Maps, 10)})
	table.Append([]string{"slices", strconv.FormatUint(stats.Slices, 10)})
	table.Append([]string{"leaves", strconv.FormatUint(stats.Leaves, 10)})
	table.Append([]string{"depth", strconv.Itoa(stats.Depth)})
	table.Render()
	return nil
}
