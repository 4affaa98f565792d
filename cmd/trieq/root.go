package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgPath string

	rootCmd = &cobra.Command{
		Use:   "trieq",
		Short: "Batch prefix-tree queries",
		Long: "trieq builds a prefix tree from a word list and runs batches of " +
			"queries through the build-selected executor, printing results as JSON.",
		SilenceUsage: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the trieq version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "trieq", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML run config")
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(versionCmd)
}
