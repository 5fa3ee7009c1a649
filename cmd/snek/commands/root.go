package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/snekimus/snek/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snek",
	Short:             "snek is a single player snake game for the terminal",
	Version:           version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error { return setupLogging() },
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "food placement seed, 0 picks one from the clock")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// Execute runs the root command, with no subcommand it plays the game
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var seed int64

// newRand seeds food placement from --seed, picking a seed from the clock
// when none was given.
func newRand() *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
