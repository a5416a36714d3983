package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zappabad/paperhands/internal/game"
)

var (
	configPath string
	savePath   string
	seed       int64
	verbose    bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paperhands",
	Short: "A single-player terminal stock market game",
	Long: `Paperhands simulates a small stock market one day at a time: an index
with trend regimes, macro rates, sector trends, generated news, dividends,
margin trading and loans. Trade from the terminal and try to beat the market.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "", "save database path (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 seeds from the clock")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(savesCmd)
}

// loadGameConfig merges the config file with CLI overrides.
func loadGameConfig() (game.Config, error) {
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if savePath != "" {
		cfg.SavePath = savePath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
