// Package store fetches and extracts data from Steam storefront pages:
// app pages, the search page, and tag browse pages. All extraction is
// field-local; a missing node yields a zero value, never an error.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mtlaird/steam-db/internal/httpdoc"
)

const baseURL = "https://store.steampowered.com"

var (
	// ErrNotOnStore means the app page redirected away from the app
	// path: the app has been delisted from the storefront.
	ErrNotOnStore = errors.New("app is no longer on the Steam store")

	// ErrAgeCheckRequired means the app page redirected to the age
	// gate interstitial.
	ErrAgeCheckRequired = errors.New("app requires an age check")

	// ErrAgeCheckFailed means the scripted age confirmation did not
	// land on the canonical app page.
	ErrAgeCheckFailed = errors.New("age check was not successful")

	// ErrAppIDUnresolved means a search term produced no usable result.
	ErrAppIDUnresolved = errors.New("app ID could not be determined")
)

// AppURL returns the canonical storefront URL for an app.
func AppURL(appID string) string {
	return fmt.Sprintf("%s/app/%s/", baseURL, appID)
}

func ageCheckURL(appID string) string {
	return fmt.Sprintf("%s/agecheck/app/%s/", baseURL, appID)
}

// ResolveAppID runs a storefront search and returns the first result's
// app ID, taken from the fifth path segment of its link.
func ResolveAppID(ctx context.Context, f httpdoc.Fetcher, term string) (string, error) {
	searchURL := fmt.Sprintf("%s/search/?term=%s", baseURL, url.QueryEscape(term))
	doc, err := f.Fetch(ctx, searchURL)
	if err != nil {
		return "", err
	}

	href, ok := doc.Find("#search_result_container a").First().Attr("href")
	if !ok {
		return "", ErrAppIDUnresolved
	}
	parts := strings.Split(href, "/")
	if len(parts) < 5 || parts[4] == "" {
		return "", ErrAppIDUnresolved
	}
	return parts[4], nil
}

// FetchAppPage fetches an app's storefront page and classifies the
// final URL: a redirect off the app path means the app was delisted,
// a redirect to the age gate means confirmation is needed.
func FetchAppPage(ctx context.Context, f httpdoc.Fetcher, appID string) (*httpdoc.Document, error) {
	doc, err := f.Fetch(ctx, AppURL(appID))
	if err != nil {
		return nil, err
	}
	if !strings.Contains(doc.FinalURL, "app") {
		return nil, ErrNotOnStore
	}
	if strings.Contains(doc.FinalURL, "agecheck") {
		return nil, ErrAgeCheckRequired
	}
	return doc, nil
}

// ConfirmAgeCheck performs the scripted age confirmation: a GET to
// establish the gate session, then the birthdate form POST. It
// succeeds only when the post-submission URL is exactly the canonical
// app URL; any other landing page fails with ErrAgeCheckFailed.
func ConfirmAgeCheck(ctx context.Context, f httpdoc.Fetcher, appID string) (*httpdoc.Document, error) {
	if _, err := f.Fetch(ctx, ageCheckURL(appID)); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("snr", "1_agecheck_agecheck__age-gate")
	form.Set("ageDay", "1")
	form.Set("ageMonth", "April")
	form.Set("ageYear", "1980")

	doc, err := f.PostForm(ctx, ageCheckURL(appID), form)
	if err != nil {
		return nil, err
	}
	if doc.FinalURL != AppURL(appID) {
		return nil, ErrAgeCheckFailed
	}
	return doc, nil
}
