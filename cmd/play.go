package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/AbateG/deutsche-ubungen/internal/app"
	"github.com/AbateG/deutsche-ubungen/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("case", "", "Only exercises tagged with this grammatical case (e.g. akkusativ)")
	playCmd.Flags().String("gender", "", "Only exercises tagged with this gender (e.g. feminin)")
}

func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openScores(cfg)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer st.Close()

	builder := newBuilder(cmd, cfg)
	sess, err := builder.BuildSession(ctx, cfg.Topic, cfg.Level, filterFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}

	if err := sess.Start(ctx, st.Scores()); err != nil {
		if errors.Is(err, session.ErrNoExercises) {
			fmt.Println("Keine Übungen verfügbar.")
			return nil
		}
		return fmt.Errorf("start session: %w", err)
	}

	title := fmt.Sprintf("%s %s", capitalize(cfg.Topic), strings.ToUpper(cfg.Level))
	return app.Run(app.Options{
		Session: sess,
		Scores:  st.Scores(),
		Title:   title,
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
