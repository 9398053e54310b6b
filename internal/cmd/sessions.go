package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"intervo/internal/logging"
)

// SessionsCmd manages interview sessions
type SessionsCmd struct {
	Del  SessionsDelCmd  `cmd:"del" help:"Delete a session"`
	List SessionsListCmd `cmd:"list" help:"List all sessions" default:"1"`
}

// SessionsListCmd lists the sessions held by the interview service
type SessionsListCmd struct {
	ServerURL string `help:"Base URL of the interview service" default:""`
	Token     string `help:"Bearer token for the interview service" default:""`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	service := cli.Container.NewService(s.ServerURL, s.Token)

	summaries, err := service.ListSessions(context.Background())
	if err != nil {
		logging.Logger.Error("Failed to list sessions", "error", err)
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tROLE\tSTATUS\tCREATED")
	for _, summary := range summaries {
		created := ""
		if !summary.CreatedAt.IsZero() {
			created = summary.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			summary.ID, summary.Title, summary.Role, summary.Status, created)
	}
	return w.Flush()
}

// SessionsDelCmd deletes a session from the interview service
type SessionsDelCmd struct {
	Force     bool   `help:"Force deletion without confirmation" short:"f"`
	ID        string `arg:"" help:"ID of the session to delete"`
	ServerURL string `help:"Base URL of the interview service" default:""`
	Token     string `help:"Bearer token for the interview service" default:""`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions del command", "session_id", s.ID, "force", s.Force)

	if !s.Force && !s.confirmDeletion() {
		return nil
	}

	service := cli.Container.NewService(s.ServerURL, s.Token)
	if err := service.DeleteSession(context.Background(), s.ID); err != nil {
		logging.Logger.Error("Failed to delete session", "session_id", s.ID, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	logging.Logger.Info("Session deleted successfully via CLI", "session_id", s.ID)
	fmt.Printf("Session '%s' deleted successfully\n", s.ID)
	return nil
}

func (s *SessionsDelCmd) confirmDeletion() bool {
	fmt.Printf("WARNING: This will delete session '%s' and its history\n", s.ID)
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled session deletion", "session_id", s.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}
