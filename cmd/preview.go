package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated exercise set as JSON",
	Long:  "Loads and normalizes the exercises for a topic/level and dumps them to stdout for data debugging, without starting a session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		builder := newBuilder(cmd, cfg)
		exercises, err := builder.BuildExercises(cmd.Context(), cfg.Topic, cfg.Level)
		if err != nil {
			return fmt.Errorf("build exercises: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(exercises)
	},
}
