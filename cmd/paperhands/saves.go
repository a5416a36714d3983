package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zappabad/paperhands/internal/calendar"
	"github.com/zappabad/paperhands/internal/save"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage save slots",
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all save slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No saves found.")
			return nil
		}
		fmt.Printf("%-16s %-20s %3s %-12s %6s %-10s\n", "Slot", "Saved", "Ver", "Player", "Day", "Date")
		for _, info := range infos {
			if info.Corrupt {
				fmt.Printf("%-16s %-20s %3d %-12s %6s %-10s\n", info.Slot, info.SavedAt, info.SaveVersion, info.PlayerName, "-", "-")
				continue
			}
			fmt.Printf("%-16s %-20s %3d %-12s %6d %-10s\n", info.Slot, info.SavedAt, info.SaveVersion, info.PlayerName,
				info.NetWorthDay, calendar.FromDayNumber(info.NetWorthDay))
		}
		return nil
	},
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted slot %q.\n", args[0])
		return nil
	},
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func openStore() (*save.Store, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}
	return save.Open(cfg.SavePath, logger)
}
