package wishlist

import (
	"testing"

	"github.com/mtlaird/steam-db/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discounted(title, price, percent, full string) models.WishlistEntry {
	return models.WishlistEntry{
		Title:           title,
		Discounted:      true,
		DiscountPrice:   price,
		DiscountPercent: percent,
		FullPrice:       full,
	}
}

var discountEntries = []models.WishlistEntry{
	discounted("Alpha", "$10.00", "-10%", "$11.11"),
	{Title: "Bravo", FullPrice: "1999"},
	discounted("Charlie", "$2.50", "-50%", "$5.00"),
	{Title: "Delta", PriceError: true},
	discounted("Echo", "$15.00", "-25%", "$20.00"),
}

func TestDiscounted_KeepsOnlyDiscounted(t *testing.T) {
	out := Discounted(discountEntries, Filter{})

	require.Len(t, out, 3)
	for _, e := range out {
		assert.True(t, e.Discounted)
	}
}

func TestDiscounted_SortNonePreservesOrder(t *testing.T) {
	out := Discounted(discountEntries, Filter{})

	assert.Equal(t, "Alpha", out[0].Title)
	assert.Equal(t, "Charlie", out[1].Title)
	assert.Equal(t, "Echo", out[2].Title)
}

func TestDiscounted_SortPercent(t *testing.T) {
	out := Discounted(discountEntries, Filter{Sort: SortPercent})

	require.Len(t, out, 3)
	assert.Equal(t, "-50%", out[0].DiscountPercent)
	assert.Equal(t, "-25%", out[1].DiscountPercent)
	assert.Equal(t, "-10%", out[2].DiscountPercent)
}

func TestDiscounted_SortPrice(t *testing.T) {
	out := Discounted(discountEntries, Filter{Sort: SortPrice})

	assert.Equal(t, []string{"$2.50", "$10.00", "$15.00"},
		[]string{out[0].DiscountPrice, out[1].DiscountPrice, out[2].DiscountPrice})
}

func TestDiscounted_SortSavings(t *testing.T) {
	out := Discounted(discountEntries, Filter{Sort: SortSavings})

	// Echo saves $5.00, Charlie $2.50, Alpha $1.11.
	assert.Equal(t, "Echo", out[0].Title)
	assert.Equal(t, "Charlie", out[1].Title)
	assert.Equal(t, "Alpha", out[2].Title)
}

func TestDiscounted_SortTitle(t *testing.T) {
	out := Discounted(discountEntries, Filter{Sort: SortTitle})

	assert.Equal(t, "Alpha", out[0].Title)
	assert.Equal(t, "Charlie", out[1].Title)
	assert.Equal(t, "Echo", out[2].Title)
}

func TestDiscounted_MaxPriceIsInclusive(t *testing.T) {
	max := 15.0
	out := Discounted(discountEntries, Filter{MaxPrice: &max})

	require.Len(t, out, 3)

	max = 14.99
	out = Discounted(discountEntries, Filter{MaxPrice: &max})
	require.Len(t, out, 2)
	for _, e := range out {
		assert.LessOrEqual(t, PriceValue(e.DiscountPrice), max)
	}
}

func TestDiscounted_MinDiscount(t *testing.T) {
	min := 25
	out := Discounted(discountEntries, Filter{MinDiscount: &min})

	require.Len(t, out, 2)
	assert.Equal(t, "Charlie", out[0].Title)
	assert.Equal(t, "Echo", out[1].Title)
}

func TestCountByPercent(t *testing.T) {
	entries := append(discountEntries, discounted("Foxtrot", "$1.00", "-50%", "$2.00"))

	counts := CountByPercent(entries)
	assert.Equal(t, map[string]int{"-10%": 1, "-25%": 1, "-50%": 2}, counts)
}

func TestCountByPrice(t *testing.T) {
	counts := CountByPrice(discountEntries)
	assert.Equal(t, map[string]int{"$10.00": 1, "$2.50": 1, "$15.00": 1}, counts)
}

func TestCounts_NoDiscounts(t *testing.T) {
	entries := []models.WishlistEntry{{Title: "Bravo", FullPrice: "1999"}}

	assert.Empty(t, CountByPercent(entries))
	assert.Empty(t, CountByPrice(entries))
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 14.99, PriceValue("$14.99"))
	assert.Equal(t, 1099.99, PriceValue("$1,099.99"))
	assert.Equal(t, 0.0, PriceValue("free"))
}

func TestPercentValue(t *testing.T) {
	assert.Equal(t, 50, PercentValue("-50%"))
	assert.Equal(t, 0, PercentValue(""))
}
