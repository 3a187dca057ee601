package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deutsche-ubungen",
	Short: "German vocabulary and grammar trainer",
	Long:  "Deutsche Übungen — practice articles, cases, and vocabulary with graded quiz sessions and persisted high scores.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("topic", "", "Exercise topic (overrides config, e.g. artikel, faelle, wortschatz)")
	rootCmd.PersistentFlags().String("level", "", "CEFR level (overrides config, e.g. a1)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for shuffling (0 = time-based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
