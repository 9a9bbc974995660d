// Package steamdb fetches and extracts data from SteamDB app pages,
// the catalog mirror that keeps pricing history and outlives
// storefront delistings.
package steamdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/models"
)

const baseURL = "https://steamdb.info"

// ErrAppNotFound means SteamDB has no page for the app ID.
var ErrAppNotFound = errors.New("app could not be found on SteamDB")

// AppURL returns the SteamDB info page URL for an app.
func AppURL(appID string) string {
	return fmt.Sprintf("%s/app/%s/info/", baseURL, appID)
}

// FetchAppPage fetches an app's SteamDB page. A 404 means the app is
// not in the mirror's catalog.
func FetchAppPage(ctx context.Context, f httpdoc.Fetcher, appID string) (*httpdoc.Document, error) {
	doc, err := f.Fetch(ctx, AppURL(appID))
	if err != nil {
		return nil, err
	}
	if doc.StatusCode == http.StatusNotFound {
		return nil, ErrAppNotFound
	}
	return doc, nil
}

// AppName extracts the app's name from the page's microdata.
func AppName(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(`[itemprop="name"]`).First().Text())
}

// Credits extracts the developer and publisher lists from the page's
// microdata. Either list is nil when the page does not carry the
// attribute, which lets the assembler distinguish "absent" from
// "present but empty".
func Credits(doc *goquery.Document) (developers, publishers []string) {
	if node := doc.Find(`[itemprop="author"]`).First(); node.Length() > 0 {
		developers = splitClean(node.Text())
	}
	if node := doc.Find(`[itemprop="publisher"]`).First(); node.Length() > 0 {
		publishers = splitClean(node.Text())
	}
	return
}

// HistoricalLow extracts the lowest recorded price row for the given
// store country code. The row's last cell carries the date in its
// title attribute and "<price> <discount>" as text. Returns nil when
// the page has no price table for that region.
func HistoricalLow(doc *goquery.Document, countryCode string) *models.HistoricalLow {
	cell := doc.Find(fmt.Sprintf(`td[data-cc="%s"]`, countryCode)).First()
	if cell.Length() == 0 {
		return nil
	}
	last := cell.Parent().Find("td").Last()
	fields := strings.Fields(last.Text())
	if len(fields) == 0 {
		return nil
	}
	return &models.HistoricalLow{
		Date:     last.AttrOr("title", ""),
		Price:    fields[0],
		Discount: fields[len(fields)-1],
	}
}

func splitClean(s string) []string {
	out := []string{}
	for _, e := range strings.Split(s, ",") {
		if t := strings.TrimSpace(e); t != "" {
			out = append(out, t)
		}
	}
	return out
}
