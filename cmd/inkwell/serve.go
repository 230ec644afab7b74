package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sozercan/inkwell/internal/app"
	"github.com/sozercan/inkwell/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Server.Port = servePort
		}

		a, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create analyzer: %w", err)
		}
		return server.New(cfg.Server, a).Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
