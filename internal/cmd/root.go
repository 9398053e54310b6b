package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"intervo/internal/config"
	"intervo/internal/logging"
	"intervo/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the intervo TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage interview sessions (list, del)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("INTERVO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("INTERVO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Share debug settings with child processes through the environment so
	// they append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("INTERVO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("INTERVO_DEBUG_FILE", logFilePath)
		}
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Roles           string `help:"Comma-separated list of interview roles offered on the dashboard" default:""`
	ServerURL       string `help:"Base URL of the interview service" default:""`
	Token           string `help:"Bearer token for the interview service" default:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings with the usual precedence
	if cli.settings != nil {
		if r.ErrorClearDelay == 10 {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
	}

	roles := cli.Container.Roles
	if r.Roles != "" {
		roles = splitTrimmed(r.Roles)
	}

	controller := cli.Container.NewController(r.ServerURL, r.Token)

	logging.Logger.Info("Starting intervo TUI")
	p := tea.NewProgram(
		ui.NewModel(controller, ui.Config{
			ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
			Roles:           roles,
		}),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
