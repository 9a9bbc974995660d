package steamdb

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
	docs map[string]*httpdoc.Document
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (*httpdoc.Document, error) {
	if d, ok := f.docs[pageURL]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unexpected fetch: %s", pageURL)
}

func (f *fakeFetcher) PostForm(_ context.Context, pageURL string, _ url.Values) (*httpdoc.Document, error) {
	return nil, fmt.Errorf("unexpected post: %s", pageURL)
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const dbPageHTML = `<html><body>
<h1 itemprop="name">Half-Life</h1>
<span itemprop="author">Valve, Gearbox Software</span>
<span itemprop="publisher">Sierra</span>
<table>
<tr>
	<td data-cc="us">U.S. Dollar</td>
	<td>$9.99</td>
	<td title="November 25, 2015">$0.99 at -90%</td>
</tr>
<tr>
	<td data-cc="uk">British Pound</td>
	<td>£6.99</td>
	<td title="November 25, 2015">£0.69 at -90%</td>
</tr>
</table>
</body></html>`

func TestAppName(t *testing.T) {
	assert.Equal(t, "Half-Life", AppName(parseDoc(t, dbPageHTML)))
}

func TestCredits(t *testing.T) {
	developers, publishers := Credits(parseDoc(t, dbPageHTML))
	assert.Equal(t, []string{"Valve", "Gearbox Software"}, developers)
	assert.Equal(t, []string{"Sierra"}, publishers)
}

func TestCredits_Absent(t *testing.T) {
	developers, publishers := Credits(parseDoc(t, `<html><body></body></html>`))
	assert.Nil(t, developers)
	assert.Nil(t, publishers)
}

func TestHistoricalLow(t *testing.T) {
	low := HistoricalLow(parseDoc(t, dbPageHTML), "us")
	require.NotNil(t, low)
	assert.Equal(t, "November 25, 2015", low.Date)
	assert.Equal(t, "$0.99", low.Price)
	assert.Equal(t, "-90%", low.Discount)
}

func TestHistoricalLow_OtherRegion(t *testing.T) {
	low := HistoricalLow(parseDoc(t, dbPageHTML), "uk")
	require.NotNil(t, low)
	assert.Equal(t, "£0.69", low.Price)
}

func TestHistoricalLow_NoTable(t *testing.T) {
	assert.Nil(t, HistoricalLow(parseDoc(t, `<html><body></body></html>`), "us"))
}

func TestFetchAppPage(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		AppURL("70"): {Document: parseDoc(t, dbPageHTML), FinalURL: AppURL("70"), StatusCode: 200},
	}}

	doc, err := FetchAppPage(context.Background(), f, "70")
	require.NoError(t, err)
	assert.Equal(t, "Half-Life", AppName(doc.Document))
}

func TestFetchAppPage_NotFound(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*httpdoc.Document{
		AppURL("999"): {Document: parseDoc(t, `<html></html>`), FinalURL: AppURL("999"), StatusCode: 404},
	}}

	_, err := FetchAppPage(context.Background(), f, "999")
	assert.ErrorIs(t, err, ErrAppNotFound)
}
