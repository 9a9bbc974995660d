// Package wishlist extracts a user's wishlist from the embedded script
// payload of their community wishlist page and derives discount views
// over it.
package wishlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/models"
	"github.com/mtlaird/steam-db/internal/store"
	"github.com/tidwall/gjson"
)

// dataMarker introduces the script payload: an app stub array followed
// by an info object keyed by stringified app ID.
const dataMarker = "var g_rgWishlistData ="

// URL returns a user's community wishlist page URL.
func URL(userID string) string {
	return fmt.Sprintf("https://steamcommunity.com/profiles/%s/wishlist/", userID)
}

// Stub is one entry of the ordered wishlist array: the app ID and the
// unix timestamp it was added.
type Stub struct {
	AppID string `json:"appid"`
	Added int64  `json:"added"`
}

// Snapshot is one parsed wishlist: the ordered stubs, the keyed info
// payload, and the entries derived from joining the two. It is built
// once per fetch and immutable afterwards.
type Snapshot struct {
	Apps    []Stub
	info    gjson.Result
	entries []models.WishlistEntry
}

// Fetch retrieves and parses a user's wishlist.
func Fetch(ctx context.Context, f httpdoc.Fetcher, userID string) (*Snapshot, error) {
	doc, err := f.Fetch(ctx, URL(userID))
	if err != nil {
		return nil, err
	}
	return Parse(doc.Document), nil
}

// Parse extracts the wishlist payload from a wishlist page document.
// A page without the payload (private profile, empty wishlist, markup
// drift) yields an empty snapshot, not an error.
func Parse(doc *goquery.Document) *Snapshot {
	var script string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), dataMarker) {
			script = s.Text()
		}
	})

	snap := &Snapshot{entries: []models.WishlistEntry{}}
	if script == "" {
		return snap
	}

	// The payload is two sequential JSON literals: "var g_rgWishlistData
	// = [...]; var g_rgAppInfo = {...};". Slice the array up to the
	// first semicolon, then the object up to its closing "};".
	arrStart := strings.Index(script, "[")
	arrEnd := strings.Index(script, ";")
	if arrStart < 0 || arrEnd < arrStart {
		return snap
	}
	apps := gjson.Parse(script[arrStart:arrEnd])

	rest := script[arrEnd+1:]
	objStart := strings.Index(rest, "{")
	objEnd := strings.Index(rest, "};")
	if objStart < 0 || objEnd < objStart {
		return snap
	}
	snap.info = gjson.Parse(rest[objStart : objEnd+1])

	apps.ForEach(func(_, app gjson.Result) bool {
		stub := Stub{
			AppID: app.Get("appid").String(),
			Added: app.Get("added").Int(),
		}
		snap.Apps = append(snap.Apps, stub)

		inf := snap.info.Get(stub.AppID)
		if !inf.Exists() {
			return true
		}
		snap.entries = append(snap.entries, buildEntry(stub, inf))
		return true
	})

	return snap
}

// buildEntry joins one stub with its info payload. Pricing comes from
// the first subscription: a zero discount percent means full price in
// raw store subunits, a non-zero one means the discounted price is the
// subunit price over 100 and the pre-discount price sits in an
// embedded markup fragment. An empty subscription list marks the entry
// as price-undeterminable but keeps it in the list.
func buildEntry(stub Stub, inf gjson.Result) models.WishlistEntry {
	e := models.WishlistEntry{
		AppID:   stub.AppID,
		Title:   inf.Get("name").String(),
		AddedOn: stub.Added,
		URL:     store.AppURL(stub.AppID),
	}

	subs := inf.Get("subs").Array()
	if len(subs) == 0 {
		e.PriceError = true
		return e
	}
	sub := subs[0]

	if pct := sub.Get("discount_pct").Int(); pct == 0 {
		e.FullPrice = sub.Get("price").String()
	} else {
		e.Discounted = true
		e.DiscountPrice = fmt.Sprintf("$%.2f", sub.Get("price").Float()/100)
		e.DiscountPercent = fmt.Sprintf("-%d%%", pct)
		e.FullPrice = originalPrice(sub.Get("discount_block").String())
	}
	return e
}

// originalPrice pulls the pre-discount price out of the discount_block
// markup fragment.
func originalPrice(block string) string {
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(block))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(frag.Find("div.discount_original_price").Text())
}

// Entries returns the derived wishlist entries in wishlist order.
func (s *Snapshot) Entries() []models.WishlistEntry {
	return s.entries
}

// RemovedFromStore returns the IDs of stubs with no info payload:
// wishlisted apps that have since been removed from the store.
func (s *Snapshot) RemovedFromStore() []string {
	var removed []string
	for _, stub := range s.Apps {
		if !s.info.Get(stub.AppID).Exists() {
			removed = append(removed, stub.AppID)
		}
	}
	return removed
}
