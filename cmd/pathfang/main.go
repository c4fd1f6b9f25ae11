// Package main provides the entry point for the pathfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pathfang/cmd/pathfang/commands"
	"github.com/Sumatoshi-tech/pathfang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pathfang",
		Short: "Pathfang Path Interning - flyweight path pool toolkit",
		Long: `Pathfang interns hierarchical paths into a flyweight pool and reports
on the resulting shape and memory sharing.

Commands:
  ingest    Build a pool from a directory, git repository, or path list`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewIngestCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "pathfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
