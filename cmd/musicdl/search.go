package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bue221/music-downloader/internal/library"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the library by title and artist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lib := library.New(cfg.Library.Root)
		matches := library.Search(strings.Join(args, " "), lib.All())

		if jsonOutput {
			return printJSON(matches)
		}

		if len(matches) == 0 {
			fmt.Println("No matches")
			return nil
		}

		for _, m := range matches {
			collection := m.Track.Collection
			if collection == "" {
				collection = "-"
			}
			fmt.Printf("  %.2f  %-20s %s - %s\n", m.Score, collection, m.Track.Artist, m.Track.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
