package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mtlaird/steam-db/internal/models"
)

func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAppInfo prints a merged app record in a human-friendly layout.
func printAppInfo(info *models.AppInfo) {
	fmt.Printf("%s (app %s)\n", info.Name, info.AppID)
	if info.ReleaseDate != "" {
		fmt.Printf("  Released: %s\n", info.ReleaseDate)
	}
	if info.Metascore != nil {
		fmt.Printf("  Metascore: %d\n", *info.Metascore)
	}
	if rs := info.ReviewSummary; rs != nil {
		fmt.Printf("  Reviews: %s\n", rs.Label)
		if rs.Recent != "" {
			fmt.Printf("    Recent:  %s\n", rs.Recent)
		}
		if rs.Overall != "" {
			fmt.Printf("    Overall: %s\n", rs.Overall)
		}
	}
	printList("Developers", info.Developers)
	printList("Publishers", info.Publishers)
	printList("Genres", info.Genres)
	printList("Categories", info.Categories)
	printList("Tags", info.Tags)
	if info.DescriptionSnippet != "" {
		fmt.Printf("  %s\n", info.DescriptionSnippet)
	}
	if low := info.HistoricalLow; low != nil {
		fmt.Printf("  Historical low: %s (%s) on %s\n", low.Price, low.Discount, low.Date)
	}
}

func printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s: %s\n", label, strings.Join(items, ", "))
}

// printWishlistEntries prints one line per entry, matching the shape
// "Title (url) Full price: X Discount: Y Sale price: Z".
func printWishlistEntries(entries []models.WishlistEntry) {
	for _, e := range entries {
		if e.PriceError {
			fmt.Printf("%s (%s) Price could not be determined\n", e.Title, e.URL)
			continue
		}
		fmt.Printf("%s (%s) Full price: %s Discount: %s Sale price: %s\n",
			e.Title, e.URL, e.FullPrice, e.DiscountPercent, e.DiscountPrice)
	}
}

// printCounts prints a grouped count map with keys in sorted order.
func printCounts(counts map[string]int, format string) error {
	if format == "json" {
		return writeJSON(counts)
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, counts[k])
	}
	return nil
}

func printAchievements(achievements []models.Achievement) {
	for _, a := range achievements {
		line := "  " + a.Title
		if a.Percent != "" {
			line += " (" + a.Percent + ")"
		}
		if a.UnlockedAt != "" {
			line += " [unlocked " + a.UnlockedAt + "]"
		}
		fmt.Println(line)
		if a.Description != "" {
			fmt.Printf("    %s\n", a.Description)
		}
	}
}

func printBrowseSection(name string, rows []models.BrowseRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("%s:\n", name)
	for _, r := range rows {
		line := "  " + r.Title
		if r.Price != "" {
			line += "  " + r.Price
			if r.DiscountPct != "" {
				line += fmt.Sprintf("  (was %s, %s)", r.OriginalPrice, r.DiscountPct)
			}
		}
		fmt.Println(line)
	}
}
