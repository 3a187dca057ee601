package cmd

import (
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbateG/deutsche-ubungen/internal/config"
	"github.com/AbateG/deutsche-ubungen/internal/quiz"
	"github.com/AbateG/deutsche-ubungen/internal/session"
	"github.com/AbateG/deutsche-ubungen/internal/source"
	"github.com/AbateG/deutsche-ubungen/internal/store"
)

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
		cfg.Topic = topic
	}
	if level, _ := cmd.Flags().GetString("level"); level != "" {
		cfg.Level = level
	}
	return cfg, nil
}

// newBuilder wires a session builder from the configuration.
func newBuilder(cmd *cobra.Command, cfg *config.Config) *quiz.Builder {
	var loader *source.Loader
	if cfg.DataURL != "" {
		loader = source.NewHTTP(cfg.DataURL, &http.Client{Timeout: 10 * time.Second})
	} else {
		loader = source.NewFS(os.DirFS(cfg.DataDir))
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &quiz.Builder{
		Loader:      loader,
		Distractors: cfg.Distractors,
		Rng:         rand.New(rand.NewSource(seed)),
		Log:         config.NewLogger(cfg.Log),
	}
}

// openScores opens the high-score database configured for this run.
func openScores(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}

// filterFromFlags builds the optional session filter from --case/--gender.
func filterFromFlags(cmd *cobra.Command) session.Filter {
	filter := session.Filter{}
	if v, _ := cmd.Flags().GetString("case"); v != "" {
		filter["case"] = []string{v}
	}
	if v, _ := cmd.Flags().GetString("gender"); v != "" {
		filter["gender"] = []string{v}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}
