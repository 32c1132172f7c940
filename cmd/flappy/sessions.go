package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagSessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent SSH sessions",
	Long: `Display the most recent sessions recorded by 'flappy serve'.

Examples:
  flappy sessions
  flappy sessions --limit 50`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Server.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}

	sessions, err := store.RecentSessions(flagSessionLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-16s  %-21s  %-10s  %s\n", "Started", "User", "Remote", "Duration", "Runs")
	fmt.Printf("  %-16s  %-16s  %-21s  %-10s  %s\n", "-------", "----", "------", "--------", "----")

	for _, s := range sessions {
		duration := "open"
		if !s.EndedAt.IsZero() {
			duration = s.Duration().Round(time.Second).String()
		}
		fmt.Printf("  %-16s  %-16s  %-21s  %-10s  %d\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.User, s.Remote, duration, s.Runs)
	}
}
