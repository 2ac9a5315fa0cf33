package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunarcade/lunarcade/internal/registry"
	"github.com/lunarcade/lunarcade/internal/storage"
)

var flagStatsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show landing attempt statistics",
	Long: `Summarize recorded landing attempts: totals, success rate,
average touchdown speed and flight time, plus the most recent attempts.

Examples:
  lunarcade stats
  lunarcade stats lander --recent 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent attempts to list")
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := "lander"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lunarcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mission Statistics - %s\n", title)
	fmt.Println()

	if stats.Total == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lunarcade play %s' to log your first landing attempt.\n", gameID)
		return
	}

	fmt.Printf("  Attempts:       %d\n", stats.Total)
	fmt.Printf("  Safe landings:  %d (%.1f%%)\n", stats.Landed, stats.SuccessRate())
	if stats.Landed > 0 {
		fmt.Printf("  Avg touchdown:  %.2f m/s\n", stats.AvgSpeed)
	}
	fmt.Printf("  Avg flight:     %.1f s\n", stats.AvgDuration)

	recent, err := store.RecentAttempts(gameID, flagStatsRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent attempts: %v\n", err)
		os.Exit(1)
	}

	if len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Recent attempts (newest first):\n")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %-8s  %s\n",
		"Result", "Speed", "Tilt", "Fuel", "Flight", "Date")
	fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %-8s  %s\n",
		"------", "-----", "----", "----", "------", "----")

	for _, a := range recent {
		result := "CRASH"
		if a.Landed {
			result = "LANDED"
		}
		dateStr := a.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-8.2f  %-8.1f  %-8.0f  %-8.1f  %s\n",
			result, a.Speed, a.TiltDeg, a.Fuel, a.Duration, dateStr)
	}
}
