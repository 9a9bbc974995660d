package cmd

import (
	"context"
	"fmt"

	"github.com/mtlaird/steam-db/internal/httputil"
	"github.com/mtlaird/steam-db/internal/steamapi"
	"github.com/spf13/cobra"
)

var ownedCmd = &cobra.Command{
	Use:   "owned",
	Short: "List owned games via the Steam Web API",
	Long:  "Lists the configured account's owned games. Requires STEAM_API_KEY and STEAM_ID.",
	Args:  cobra.NoArgs,
	RunE:  runOwned,
}

func init() {
	ownedCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(ownedCmd)
}

func runOwned(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	client := steamapi.NewClient(httputil.NewHTTPClient(nil))
	games, err := client.OwnedGames(context.Background(), cfg.APIKey, cfg.SteamID)
	if err != nil {
		return fmt.Errorf("owned games: %w", err)
	}

	if format == "json" {
		return writeJSON(games)
	}
	fmt.Printf("%d owned games\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s [%d] (%d min played)\n", g.Name, g.AppID, g.PlaytimeForever)
	}
	return nil
}
