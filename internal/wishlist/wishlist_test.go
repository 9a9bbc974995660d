package wishlist

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wishlistPageHTML = `<html><head>
<script>var g_something_else = 1;</script>
<script>
var g_rgWishlistData = [{"appid":70,"priority":0,"added":1577836800},{"appid":220,"priority":1,"added":1580515200},{"appid":400,"priority":2,"added":1583020800},{"appid":99999,"priority":3,"added":1585699200}];
var g_rgAppInfo = {"70":{"name":"Half-Life","subs":[{"id":31,"discount_block":"<div class=\"discount_block\"><div class=\"discount_pct\">-90%</div><div class=\"discount_prices\"><div class=\"discount_original_price\">$9.99<\/div><div class=\"discount_final_price\">$0.99<\/div><\/div><\/div>","price":99,"discount_pct":90}]},"220":{"name":"Half-Life 2","subs":[{"id":469,"discount_block":"<div class=\"discount_block\"><div class=\"discount_prices\"><div class=\"discount_final_price\">$9.99<\/div><\/div><\/div>","price":999,"discount_pct":0}]},"400":{"name":"Portal","subs":[]}};
</script>
</head><body></body></html>`

func parsePage(t *testing.T, html string) *Snapshot {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return Parse(doc)
}

func TestParse(t *testing.T) {
	snap := parsePage(t, wishlistPageHTML)

	require.Len(t, snap.Apps, 4)
	assert.Equal(t, Stub{AppID: "70", Added: 1577836800}, snap.Apps[0])

	entries := snap.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Half-Life", entries[0].Title)
	assert.Equal(t, "https://store.steampowered.com/app/70/", entries[0].URL)
}

func TestParse_DiscountedEntry(t *testing.T) {
	e := parsePage(t, wishlistPageHTML).Entries()[0]

	assert.True(t, e.Discounted)
	assert.Equal(t, "$0.99", e.DiscountPrice)
	assert.Equal(t, "-90%", e.DiscountPercent)
	assert.Equal(t, "$9.99", e.FullPrice)
	assert.False(t, e.PriceError)
}

func TestParse_FullPriceEntry(t *testing.T) {
	e := parsePage(t, wishlistPageHTML).Entries()[1]

	assert.False(t, e.Discounted)
	assert.Equal(t, "999", e.FullPrice)
	assert.Empty(t, e.DiscountPrice)
	assert.Empty(t, e.DiscountPercent)
}

func TestParse_EmptySubsKeepsEntry(t *testing.T) {
	e := parsePage(t, wishlistPageHTML).Entries()[2]

	assert.Equal(t, "Portal", e.Title)
	assert.True(t, e.PriceError)
	assert.False(t, e.Discounted)
	assert.Empty(t, e.FullPrice)
}

func TestParse_DiscountFlagImpliesBothFields(t *testing.T) {
	for _, e := range parsePage(t, wishlistPageHTML).Entries() {
		both := e.DiscountPrice != "" && e.DiscountPercent != ""
		assert.Equal(t, e.Discounted, both, "entry %s", e.AppID)
	}
}

func TestRemovedFromStore(t *testing.T) {
	snap := parsePage(t, wishlistPageHTML)
	assert.Equal(t, []string{"99999"}, snap.RemovedFromStore())
}

func TestParse_NoPayload(t *testing.T) {
	snap := parsePage(t, `<html><script>var g_unrelated = 1;</script></html>`)

	assert.Empty(t, snap.Apps)
	assert.Empty(t, snap.Entries())
	assert.Empty(t, snap.RemovedFromStore())
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://steamcommunity.com/profiles/76561198000000000/wishlist/", URL("76561198000000000"))
}
