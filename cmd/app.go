package cmd

import (
	"context"
	"fmt"

	"github.com/mtlaird/steam-db/internal/appinfo"
	"github.com/mtlaird/steam-db/internal/ui"
	"github.com/spf13/cobra"
)

var appCmd = &cobra.Command{
	Use:   "app [appid]",
	Short: "Look up merged metadata for one app",
	Long: "Looks up an app by ID or search term, fetching its storefront page " +
		"and its SteamDB page and merging both into one record. Falls back to " +
		"SteamDB alone when the app has been delisted from the store.",
	Args: cobra.MaximumNArgs(1),
	RunE: runApp,
}

func init() {
	appCmd.Flags().String("search", "", "Resolve the app by search term instead of ID")
	appCmd.Flags().String("source", "both", "Pages to fetch: store, steamdb, both")
	appCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(appCmd)
}

func runApp(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	source, _ := cmd.Flags().GetString("source")
	format, _ := cmd.Flags().GetString("format")

	req := appinfo.Request{SearchTerm: search, Source: appinfo.Source(source)}
	if len(args) > 0 {
		req.AppID = args[0]
	}
	if req.AppID == "" && req.SearchTerm == "" {
		return fmt.Errorf("an app ID or --search term is required")
	}

	fetcher := buildFetcher()

	spin := ui.NewSpinner()
	spin.Start("Looking up app...")
	ctx := ui.WithProgress(context.Background(), spin.Update)
	outcome, err := appinfo.Acquire(ctx, fetcher, req)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if !outcome.Resolved() {
		return fmt.Errorf("lookup failed: %s", outcome.Reason)
	}

	info, err := appinfo.AssembleCountry(outcome, cfg.CountryCode)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(info)
	}
	printAppInfo(info)
	return nil
}
