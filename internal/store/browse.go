package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/models"
)

// TagBrowse groups the app rows of a tag browse page by section.
type TagBrowse struct {
	NewReleases []models.BrowseRow `json:"new_releases"`
	TopSellers  []models.BrowseRow `json:"top_sellers"`
	Popular     []models.BrowseRow `json:"popular"`
	ComingSoon  []models.BrowseRow `json:"coming_soon"`
}

// BrowseTag fetches a tag browse page and extracts its four sections.
// Rows missing a title or link are skipped; price fields are optional
// per row.
func BrowseTag(ctx context.Context, f httpdoc.Fetcher, tag string) (*TagBrowse, error) {
	doc, err := f.Fetch(ctx, fmt.Sprintf("%s/tags/en/%s/", baseURL, tag))
	if err != nil {
		return nil, err
	}

	return &TagBrowse{
		NewReleases: browseRows(doc.Document, "#NewReleasesRows"),
		TopSellers:  browseRows(doc.Document, "#TopSellersRows"),
		Popular:     browseRows(doc.Document, "#ConcurrentUsersRows"),
		ComingSoon:  browseRows(doc.Document, "#ComingSoonRows"),
	}, nil
}

func browseRows(doc *goquery.Document, sectionSelector string) []models.BrowseRow {
	var rows []models.BrowseRow
	doc.Find(sectionSelector + " a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(a.Find(".tab_item_name").Text())
		if title == "" {
			return
		}
		row := models.BrowseRow{
			URL:           href,
			Title:         title,
			Price:         strings.TrimSpace(a.Find(".discount_final_price").Text()),
			DiscountPct:   strings.TrimSpace(a.Find(".discount_pct").Text()),
			OriginalPrice: strings.TrimSpace(a.Find(".discount_original_price").Text()),
		}
		if parts := strings.Split(href, "/"); len(parts) > 4 {
			row.AppID = parts[4]
		}
		rows = append(rows, row)
	})
	return rows
}
