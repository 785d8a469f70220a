package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bue221/music-downloader/internal/ledger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every track recorded in the download ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		led := ledger.Open(cfg.Ledger.Path, newLogger(cfg))
		entries := led.List()
		sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

		if jsonOutput {
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println("Ledger is empty")
			return nil
		}

		fmt.Printf("Downloaded tracks (%d):\n\n", len(entries))
		for _, e := range entries {
			collection := e.Playlist
			if collection == "" {
				collection = "-"
			}
			fmt.Printf("  %-14s %-9s %-20s %s - %s\n", e.ID, e.Source, collection, e.Artist, e.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
