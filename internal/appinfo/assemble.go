package appinfo

import (
	"errors"
	"fmt"

	"github.com/mtlaird/steam-db/internal/models"
	"github.com/mtlaird/steam-db/internal/steamdb"
	"github.com/mtlaird/steam-db/internal/store"
)

// DefaultCountryCode selects the regional pricing row used for the
// historical low unless overridden.
const DefaultCountryCode = "us"

// ErrNoDocument means assembly was attempted on an outcome that
// carries no documents.
var ErrNoDocument = errors.New("no document was acquired for the app")

// Assemble merges an outcome's documents into one record using the
// default store region.
func Assemble(o *Outcome) (*models.AppInfo, error) {
	return AssembleCountry(o, DefaultCountryCode)
}

// AssembleCountry merges an outcome's documents into one record.
//
// All storefront-sourced fields come from the storefront document when
// present. The SteamDB document contributes the historical low always,
// and seeds the name and credits only when no storefront document
// exists. Field extraction failures stay local, leaving that field at
// its zero value.
func AssembleCountry(o *Outcome, countryCode string) (*models.AppInfo, error) {
	if !o.Resolved() {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, o.Reason)
	}
	if o.StoreDoc == nil && o.DBDoc == nil {
		return nil, ErrNoDocument
	}

	info := &models.AppInfo{AppID: o.AppID}

	if o.StoreDoc != nil {
		doc := o.StoreDoc.Document
		info.Name = store.AppName(doc)
		info.ReleaseDate = store.ReleaseDate(doc)
		info.Metascore = store.Metascore(doc)
		info.ReviewSummary = store.Reviews(doc)
		info.Categories = store.Categories(doc)
		info.Tags = store.Tags(doc)
		info.Genres, info.Developers, info.Publishers = store.Details(doc)
		info.DescriptionSnippet = store.DescriptionSnippet(doc)
	}

	if o.DBDoc != nil {
		doc := o.DBDoc.Document
		if o.StoreDoc == nil {
			info.Name = steamdb.AppName(doc)
			info.Developers, info.Publishers = steamdb.Credits(doc)
		}
		info.HistoricalLow = steamdb.HistoricalLow(doc, countryCode)
	}

	return info, nil
}
