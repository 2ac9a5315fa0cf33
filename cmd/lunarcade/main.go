// lunarcade is a terminal lunar-landing simulator.
//
// Usage:
//
//	lunarcade play             - Fly the lander
//	lunarcade list             - List available games
//	lunarcade scores           - Show high scores
//	lunarcade stats            - Show landing statistics
//	lunarcade serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.lunarcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/lunarcade/lunarcade/internal/mission"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lunarcade",
	Short: "Lunarcade - Land on the Moon in your terminal",
	Long: `Lunarcade is a terminal lunar-landing simulator: bring the Eagle
down on the pad within the fuel and speed envelope, over procedurally
generated lunar terrain.

Available commands:
  play     - Fly the lander
  list     - Show all available games
  scores   - View high scores
  stats    - View landing statistics
  serve    - Start SSH server for remote play

Examples:
  lunarcade play
  lunarcade play --difficulty hard
  lunarcade scores
  lunarcade serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lunarcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
