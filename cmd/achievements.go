package cmd

import (
	"context"
	"fmt"

	"github.com/mtlaird/steam-db/internal/community"
	"github.com/mtlaird/steam-db/internal/ui"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements <appid>",
	Short: "Show an app's achievements",
	Long: "Shows an app's achievements with global unlock percentages, or a " +
		"user's unlocked/locked split when --user is given.",
	Args: cobra.ExactArgs(1),
	RunE: runAchievements,
}

func init() {
	achievementsCmd.Flags().String("user", "", "Show this user's achievements instead of global stats")
	achievementsCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	appID := args[0]
	userID, _ := cmd.Flags().GetString("user")
	format, _ := cmd.Flags().GetString("format")

	fetcher := buildFetcher()
	ctx := context.Background()

	spin := ui.NewSpinner()
	spin.Start("Fetching achievements...")
	defer spin.Stop()

	if userID != "" {
		result, err := community.UserAchievementsFor(ctx, fetcher, userID, appID)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("fetch user achievements: %w", err)
		}
		if format == "json" {
			return writeJSON(result)
		}
		fmt.Printf("Unlocked (%d):\n", len(result.Unlocked))
		printAchievements(result.Unlocked)
		fmt.Printf("\nLocked (%d):\n", len(result.Locked))
		printAchievements(result.Locked)
		return nil
	}

	achievements, err := community.GlobalAchievements(ctx, fetcher, appID)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("fetch achievements: %w", err)
	}
	if format == "json" {
		return writeJSON(achievements)
	}
	printAchievements(achievements)
	return nil
}
