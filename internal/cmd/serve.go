package cmd

import (
	"fmt"

	"intervo/internal/config"
	"intervo/internal/logging"
	"intervo/internal/server"
)

// ServeCmd starts the SSH server that hosts the TUI for remote users
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"23235"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting serve command", "host", s.Host, "port", s.Port)

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	srv, err := server.NewServer(s.Host, s.Port, settings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
