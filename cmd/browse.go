package cmd

import (
	"context"
	"fmt"

	"github.com/mtlaird/steam-db/internal/store"
	"github.com/mtlaird/steam-db/internal/ui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <tag>",
	Short: "Browse store apps by tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	tag := args[0]
	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Browsing tag %q...", tag))
	browse, err := store.BrowseTag(context.Background(), buildFetcher(), tag)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("browse tag: %w", err)
	}

	if format == "json" {
		return writeJSON(browse)
	}
	printBrowseSection("New Releases", browse.NewReleases)
	printBrowseSection("Top Sellers", browse.TopSellers)
	printBrowseSection("Popular", browse.Popular)
	printBrowseSection("Coming Soon", browse.ComingSoon)
	return nil
}
