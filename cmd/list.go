package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/sicily-map/internal/aggregate"
	"github.com/Zachdehooge/sicily-map/internal/generator"
	"github.com/Zachdehooge/sicily-map/internal/logger"
)

// addListCmd adds a 'list' subcommand that prints provinces and places in
// render order without generating HTML.
func addListCmd(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List provinces and places in map order",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}

			groups, _, err := generator.Collect(cfg, logger.L())
			if err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to load places: %w", err))
				os.Exit(1)
			}

			if len(groups) == 0 {
				cmd.Println("No places found.")
				return
			}
			printGroups(cmd.OutOrStdout(), groups)
		},
	}

	rootCmd.AddCommand(listCmd)
}

func printGroups(w io.Writer, groups []aggregate.Group) {
	header := color.New(color.Bold)
	for _, g := range groups {
		header.Fprintf(w, "%s (%d) %s\n", g.Name, g.Code, g.Color)
		for _, p := range g.Places {
			name := p.SCN
			if name == "" {
				name = generator.Placeholder
			}
			line := fmt.Sprintf("  %-8s %s", p.LayerID(), name)
			if p.ITA != "" && p.ITA != p.SCN {
				line += fmt.Sprintf(" [%s]", p.ITA)
			}
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintf(w, "%d places in %d provinces\n", aggregate.Count(groups), len(groups))
}
