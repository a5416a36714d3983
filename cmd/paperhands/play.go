package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zappabad/paperhands/internal/game"
	"github.com/zappabad/paperhands/internal/save"
	"github.com/zappabad/paperhands/tui"
)

var loadSlot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive terminal game",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&loadSlot, "load", "", "load this save slot before starting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := save.Open(cfg.SavePath, logger)
	if err != nil {
		return fmt.Errorf("opening save store: %w", err)
	}
	defer store.Close()

	g := game.New(cfg, store, logger)
	if loadSlot != "" {
		if err := g.Load(loadSlot); err != nil {
			return fmt.Errorf("loading slot %q: %w", loadSlot, err)
		}
	}

	program := tea.NewProgram(tui.NewModel(g), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
