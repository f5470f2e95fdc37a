package icon

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MaxAssetBytes caps uploaded images embedded into settings as data URLs
const MaxAssetBytes = 2 << 20

var (
	// ErrOversizedAsset means an uploaded image exceeds MaxAssetBytes
	ErrOversizedAsset = errors.New("image exceeds the 2 MB limit")

	// ErrAssetReadFailure means the uploaded image could not be read
	ErrAssetReadFailure = errors.New("could not read the selected image")
)

// DataURL embeds raw image bytes as a data URL, sniffing the content type
func DataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ReadDataURL reads an uploaded image and embeds it as a data URL. Reads
// past the size cap fail with ErrOversizedAsset and nothing is stored.
func ReadDataURL(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAssetBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetReadFailure, err)
	}
	if len(data) > MaxAssetBytes {
		return "", ErrOversizedAsset
	}
	return DataURL(data), nil
}

// RemoteFaviconURL returns the favicon service URL for a page, or an empty
// string when the page URL has no usable host.
func RemoteFaviconURL(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return "https://www.google.com/s2/favicons?domain=" + parsed.Host + "&sz=32"
}

// Discoverer finds a page's own icon by fetching its markup
type Discoverer struct {
	httpClient *http.Client
}

// NewDiscoverer creates a discoverer with a short request timeout
func NewDiscoverer() *Discoverer {
	return &Discoverer{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PageIconURL fetches the page and returns the icon its markup declares,
// resolved to an absolute URL. Pages declaring none get /favicon.ico.
func (d *Discoverer) PageIconURL(ctx context.Context, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return "", fmt.Errorf("invalid page URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	href := ""
	doc.Find("link[rel]").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
		rel, _ := selection.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		if value, exists := selection.Attr("href"); exists && value != "" {
			href = value
			return false
		}
		return true
	})
	if href == "" {
		href = "/favicon.ico"
	}

	resolved, err := base.Parse(href)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}
