package wishlist

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mtlaird/steam-db/internal/models"
)

// SortType selects the ordering of a filtered discount view.
type SortType string

const (
	SortNone    SortType = ""
	SortPercent SortType = "percent"  // descending discount percent
	SortPrice   SortType = "price"    // ascending discounted price
	SortSavings SortType = "discount" // descending absolute savings
	SortTitle   SortType = "title"    // ascending title
)

// Filter bounds and orders a discount view. Nil thresholds are
// inactive; MaxPrice is inclusive, MinDiscount compares the absolute
// percent value.
type Filter struct {
	MaxPrice    *float64
	MinDiscount *int
	Sort        SortType
}

// Discounted returns the discounted entries passing the filter, in a
// stable order. SortNone preserves wishlist order.
func Discounted(entries []models.WishlistEntry, f Filter) []models.WishlistEntry {
	out := []models.WishlistEntry{}
	for _, e := range entries {
		if !e.Discounted {
			continue
		}
		if f.MaxPrice != nil && PriceValue(e.DiscountPrice) > *f.MaxPrice {
			continue
		}
		if f.MinDiscount != nil && PercentValue(e.DiscountPercent) < *f.MinDiscount {
			continue
		}
		out = append(out, e)
	}

	switch f.Sort {
	case SortPercent:
		sort.SliceStable(out, func(i, j int) bool {
			return PercentValue(out[i].DiscountPercent) > PercentValue(out[j].DiscountPercent)
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].DiscountPrice) < PriceValue(out[j].DiscountPrice)
		})
	case SortSavings:
		sort.SliceStable(out, func(i, j int) bool {
			return savings(out[i]) > savings(out[j])
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	}
	return out
}

// CountByPercent counts the discounted entries by their exact
// formatted discount percent. No thresholds apply.
func CountByPercent(entries []models.WishlistEntry) map[string]int {
	counts := map[string]int{}
	for _, e := range Discounted(entries, Filter{}) {
		counts[e.DiscountPercent]++
	}
	return counts
}

// CountByPrice counts the discounted entries by their exact formatted
// discount price. No thresholds apply.
func CountByPrice(entries []models.WishlistEntry) map[string]int {
	counts := map[string]int{}
	for _, e := range Discounted(entries, Filter{}) {
		counts[e.DiscountPrice]++
	}
	return counts
}

// PriceValue parses a formatted currency string ("$14.99") into its
// numeric value. Unparseable input yields zero.
func PriceValue(price string) float64 {
	s := strings.TrimLeft(price, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// PercentValue parses a formatted discount percent ("-50%") into its
// absolute integer value.
func PercentValue(percent string) int {
	s := strings.Trim(percent, "-%")
	v, _ := strconv.Atoi(s)
	return v
}

func savings(e models.WishlistEntry) float64 {
	return PriceValue(e.FullPrice) - PriceValue(e.DiscountPrice)
}
