// Package httpdoc fetches pages and parses them into queryable
// documents. It is the only package that talks to the network; the
// extraction packages consume the Fetcher interface and never see an
// http.Client.
package httpdoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httputil"
	"golang.org/x/net/html/charset"
)

// Document is a parsed response body plus the request's final state.
// FinalURL is the URL after all redirects, which is how the store
// signals delistings ("app" segment gone) and age gates ("agecheck").
type Document struct {
	*goquery.Document
	FinalURL   string
	StatusCode int
}

// Fetcher retrieves a URL and returns its parsed document. Non-2xx
// responses are not errors at this layer; callers classify them via
// StatusCode. An error means the request itself failed.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*Document, error)
	PostForm(ctx context.Context, pageURL string, form url.Values) (*Document, error)
}

// Client is the plain-HTTP Fetcher implementation.
type Client struct {
	client  *http.Client
	retries int
}

// NewClient wraps an http.Client as a Fetcher.
func NewClient(client *http.Client) *Client {
	return &Client{client: client, retries: 2}
}

func (c *Client) Fetch(ctx context.Context, pageURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range httputil.BrowserHeaders() {
		req.Header[k] = v
	}
	return c.do(req)
}

func (c *Client) PostForm(ctx context.Context, pageURL string, form url.Values) (*Document, error) {
	body := form.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pageURL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body)), nil
	}
	for k, v := range httputil.FormHeaders() {
		req.Header[k] = v
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Document, error) {
	resp, err := httputil.DoWithRetry(c.client, req, c.retries)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL, err)
	}

	// Convert non-UTF-8 pages based on the Content-Type header.
	utf8Reader, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", req.URL, err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", req.URL, err)
	}

	finalURL := req.URL.String()
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Document{
		Document:   doc,
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
	}, nil
}
