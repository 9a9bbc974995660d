package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/models"
	"github.com/mtlaird/steam-db/internal/steamdb"
	"github.com/mtlaird/steam-db/internal/ui"
	"github.com/mtlaird/steam-db/internal/wishlist"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist <user-id>",
	Short: "Analyze a user's wishlist discounts",
	Long: "Fetches a user's wishlist and prints its discounted entries, " +
		"optionally filtered by price and discount thresholds, sorted, " +
		"counted, or re-checked against SteamDB historical lows.",
	Args: cobra.ExactArgs(1),
	RunE: runWishlist,
}

func init() {
	wishlistCmd.Flags().StringP("sort", "s", "", "Sort: percent, price, discount, title")
	wishlistCmd.Flags().Float64P("max-price", "p", 0, "Keep only entries at or under this discounted price")
	wishlistCmd.Flags().IntP("min-discount", "d", 0, "Keep only entries with at least this discount percent")
	wishlistCmd.Flags().BoolP("historical-low", "l", false, "Keep only entries at or below their SteamDB historical low")
	wishlistCmd.Flags().String("counts", "", "Print grouped counts instead of entries: percent, price")
	wishlistCmd.Flags().Bool("removed", false, "Print wishlisted app IDs that were removed from the store")
	wishlistCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(wishlistCmd)
}

func runWishlist(cmd *cobra.Command, args []string) error {
	userID := args[0]
	format, _ := cmd.Flags().GetString("format")

	fetcher := buildFetcher()

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching wishlist for %s...", userID))
	ctx := ui.WithProgress(context.Background(), spin.Update)
	snap, err := wishlist.Fetch(ctx, fetcher, userID)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("fetch wishlist: %w", err)
	}

	entries := snap.Entries()
	logrus.Debugf("wishlist has %d entries (%d stubs)", len(entries), len(snap.Apps))

	if removed, _ := cmd.Flags().GetBool("removed"); removed {
		for _, id := range snap.RemovedFromStore() {
			fmt.Println(id)
		}
		return nil
	}

	if counts, _ := cmd.Flags().GetString("counts"); counts != "" {
		switch counts {
		case "percent":
			return printCounts(wishlist.CountByPercent(entries), format)
		case "price":
			return printCounts(wishlist.CountByPrice(entries), format)
		default:
			return fmt.Errorf("unknown counts grouping %q", counts)
		}
	}

	filter := wishlist.Filter{}
	if cmd.Flags().Changed("max-price") {
		v, _ := cmd.Flags().GetFloat64("max-price")
		filter.MaxPrice = &v
	}
	if cmd.Flags().Changed("min-discount") {
		v, _ := cmd.Flags().GetInt("min-discount")
		filter.MinDiscount = &v
	}
	sortType, _ := cmd.Flags().GetString("sort")
	filter.Sort = wishlist.SortType(sortType)

	discounted := wishlist.Discounted(entries, filter)

	if histLow, _ := cmd.Flags().GetBool("historical-low"); histLow {
		discounted, err = atHistoricalLow(context.Background(), fetcher, discounted)
		if err != nil {
			return err
		}
	}

	if format == "json" {
		return writeJSON(discounted)
	}
	printWishlistEntries(discounted)
	return nil
}

// atHistoricalLow keeps only the entries whose current discount price
// is at or below their SteamDB historical low. One sequential SteamDB
// fetch per entry; entries without price history are dropped.
func atHistoricalLow(ctx context.Context, fetcher httpdoc.Fetcher, entries []models.WishlistEntry) ([]models.WishlistEntry, error) {
	spin := ui.NewSpinner()
	spin.Start("Checking historical lows...")
	defer spin.Stop()

	kept := []models.WishlistEntry{}
	for i, e := range entries {
		spin.Update(fmt.Sprintf("Checking historical lows... (%d/%d) %s", i+1, len(entries), e.Title))

		doc, err := steamdb.FetchAppPage(ctx, fetcher, e.AppID)
		if errors.Is(err, steamdb.ErrAppNotFound) {
			logrus.Debugf("app %s not on SteamDB, skipping historical low check", e.AppID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("historical low for %s: %w", e.AppID, err)
		}

		low := steamdb.HistoricalLow(doc.Document, cfg.CountryCode)
		if low == nil {
			logrus.Debugf("no price history for app %s", e.AppID)
			continue
		}
		if wishlist.PriceValue(low.Price) >= wishlist.PriceValue(e.DiscountPrice) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}
