// Package preview fetches the title of a web page, used as the label
// of notes that start with a link.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; linkpad)"

	// pages are cut off after this many bytes
	maxBodySize = 2 << 20
)

var ErrUnsupportedContent = errors.New("not an html page")

type Metadata struct {
	URL         string
	Title       string
	Description string
	SiteName    string
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

type Option func(*Fetcher)

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the page at rawURL and reads its metadata.
// The title is taken from og:title, twitter:title or the <title>
// element, whichever comes first.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Metadata, error) {
	meta := Metadata{URL: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil {
		return meta, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return meta, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return meta, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return meta, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return meta, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return meta, fmt.Errorf("fetch %s: %w (%s)", rawURL, ErrUnsupportedContent, ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return meta, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	meta.Title = firstNonEmpty(
		metaContent(doc, "og:title"),
		metaContent(doc, "twitter:title"),
		doc.Find("title").First().Text(),
	)
	meta.Description = firstNonEmpty(
		metaContent(doc, "og:description"),
		metaContent(doc, "description"),
	)
	meta.SiteName = metaContent(doc, "og:site_name")

	return meta, nil
}

// metaContent looks up a <meta> tag by its property or name attribute
func metaContent(doc *goquery.Document, key string) string {
	var content string

	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		prop, _ := s.Attr("property")
		name, _ := s.Attr("name")
		if !strings.EqualFold(prop, key) && !strings.EqualFold(name, key) {
			return true
		}

		content, _ = s.Attr("content")
		content = strings.TrimSpace(content)
		return content == ""
	})

	return content
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.Join(strings.Fields(v), " "); v != "" {
			return v
		}
	}
	return ""
}
