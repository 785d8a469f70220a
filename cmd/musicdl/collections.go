package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bue221/music-downloader/internal/library"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collections and their track counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lib := library.New(cfg.Library.Root)
		names := lib.Collections()

		if jsonOutput {
			return printJSON(lib.Stats())
		}

		if len(names) == 0 {
			fmt.Println("No collections")
			return nil
		}

		stats := lib.Stats()
		for _, name := range names {
			fmt.Printf("  %-40s %d tracks\n", name, stats[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}
