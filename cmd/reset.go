package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbateG/deutsche-ubungen/internal/source"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved high scores",
	Long:  "Reset the saved high score for the selected topic and level, or all scores with --all.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openScores(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		key := source.Key(cfg.Topic, cfg.Level)
		if resetAll {
			key = ""
		}
		if err := st.Scores().Reset(cmd.Context(), key); err != nil {
			return err
		}
		if resetAll {
			fmt.Println("All high scores reset.")
		} else {
			fmt.Printf("High score for %s reset.\n", key)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "reset every saved high score")
}
