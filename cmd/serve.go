package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/AbateG/deutsche-ubungen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		srv := server.New(builder, st.Scores(), builder.Log)

		builder.Log.Info("listening", "addr", cfg.HTTP.Addr)
		return http.ListenAndServe(cfg.HTTP.Addr, srv.Routes(cfg.HTTP.AllowedOrigins))
	},
}
