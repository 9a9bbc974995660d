package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	docs  map[string]*httpdoc.Document
	posts map[string]*httpdoc.Document
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (*httpdoc.Document, error) {
	if d, ok := f.docs[pageURL]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unexpected fetch: %s", pageURL)
}

func (f *fakeFetcher) PostForm(_ context.Context, pageURL string, _ url.Values) (*httpdoc.Document, error) {
	if d, ok := f.posts[pageURL]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unexpected post: %s", pageURL)
}

func fakeDoc(t *testing.T, html, finalURL string, status int) *httpdoc.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return &httpdoc.Document{Document: doc, FinalURL: finalURL, StatusCode: status}
}

func TestResolveAppID(t *testing.T) {
	searchHTML := `<html><body><div id="search_result_container">
		<a href="https://store.steampowered.com/app/70/Half-Life/">Half-Life</a>
		<a href="https://store.steampowered.com/app/220/Half-Life_2/">Half-Life 2</a>
	</div></body></html>`
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		"https://store.steampowered.com/search/?term=half-life": fakeDoc(t, searchHTML, "", 200),
	}}

	id, err := ResolveAppID(context.Background(), f, "half-life")
	require.NoError(t, err)
	assert.Equal(t, "70", id)
}

func TestResolveAppID_NoResults(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		"https://store.steampowered.com/search/?term=zzzz": fakeDoc(t, `<html><body><div id="search_result_container"></div></body></html>`, "", 200),
	}}

	_, err := ResolveAppID(context.Background(), f, "zzzz")
	assert.ErrorIs(t, err, ErrAppIDUnresolved)
}

func TestFetchAppPage(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		AppURL("70"): fakeDoc(t, `<html></html>`, AppURL("70"), 200),
	}}

	doc, err := FetchAppPage(context.Background(), f, "70")
	require.NoError(t, err)
	assert.Equal(t, AppURL("70"), doc.FinalURL)
}

func TestFetchAppPage_Delisted(t *testing.T) {
	// A redirect off the app path means the store no longer lists it.
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		AppURL("999"): fakeDoc(t, `<html></html>`, "https://store.steampowered.com/", 200),
	}}

	_, err := FetchAppPage(context.Background(), f, "999")
	assert.ErrorIs(t, err, ErrNotOnStore)
}

func TestFetchAppPage_AgeCheckRedirect(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		AppURL("1000"): fakeDoc(t, `<html></html>`, "https://store.steampowered.com/agecheck/app/1000/", 200),
	}}

	_, err := FetchAppPage(context.Background(), f, "1000")
	assert.ErrorIs(t, err, ErrAgeCheckRequired)
}

func TestConfirmAgeCheck(t *testing.T) {
	gate := "https://store.steampowered.com/agecheck/app/1000/"
	f := &fakeFetcher{
		docs: map[string]*httpdoc.Document{
			gate: fakeDoc(t, `<html></html>`, gate, 200),
		},
		posts: map[string]*httpdoc.Document{
			gate: fakeDoc(t, `<html><div class="apphub_AppName">Gated</div></html>`, AppURL("1000"), 200),
		},
	}

	doc, err := ConfirmAgeCheck(context.Background(), f, "1000")
	require.NoError(t, err)
	assert.Equal(t, "Gated", AppName(doc.Document))
}

func TestConfirmAgeCheck_WrongLandingPage(t *testing.T) {
	gate := "https://store.steampowered.com/agecheck/app/1000/"
	f := &fakeFetcher{
		docs: map[string]*httpdoc.Document{
			gate: fakeDoc(t, `<html></html>`, gate, 200),
		},
		posts: map[string]*httpdoc.Document{
			gate: fakeDoc(t, `<html></html>`, gate, 200),
		},
	}

	_, err := ConfirmAgeCheck(context.Background(), f, "1000")
	assert.ErrorIs(t, err, ErrAgeCheckFailed)
}
