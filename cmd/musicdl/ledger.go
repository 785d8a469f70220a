package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bue221/music-downloader/internal/ledger"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect and mutate the download ledger",
}

var ledgerClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every record from the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		led := ledger.Open(cfg.Ledger.Path, newLogger(cfg))
		n := led.Len()
		if err := led.Clear(); err != nil {
			return err
		}
		fmt.Printf("Cleared %d records\n", n)
		return nil
	},
}

var ledgerRemoveCmd = &cobra.Command{
	Use:   "remove <identity>",
	Short: "Remove one record by identity",
	Long: `Remove one record by identity.

YouTube tracks are keyed by the bare video id; Spotify tracks by
"spotify:<track id>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		led := ledger.Open(cfg.Ledger.Path, newLogger(cfg))
		removed, err := led.Remove(args[0])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("No record for %s\n", args[0])
			return nil
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	ledgerCmd.AddCommand(ledgerClearCmd)
	ledgerCmd.AddCommand(ledgerRemoveCmd)
	rootCmd.AddCommand(ledgerCmd)
}
