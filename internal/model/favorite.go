package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// PlaceholderName is shown when no display name can be derived from a URL
const PlaceholderName = "Untitled"

// ignorableSubdomains are host labels that carry no identity of their own.
// When the leading label of a deep hostname is one of these, the registered
// domain is used for the display name instead of the subdomain.
var ignorableSubdomains = map[string]bool{
	"www":    true,
	"app":    true,
	"m":      true,
	"web":    true,
	"mobile": true,
}

// Favorite represents a single shortcut shown on the start page grid
type Favorite struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	IconURL string `json:"iconUrl,omitempty"`
}

// NewFavoriteID derives an opaque identifier from the current wall clock.
// Two creations within the same millisecond would collide, which is accepted
// for human-paced interaction.
func NewFavoriteID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NormalizeURL ensures a stored URL always carries a scheme, prefixing
// https:// when the input does not already start with http
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// DisplayName returns the user-provided name, or a label derived from the
// URL host when the name is empty
func (f Favorite) DisplayName() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return NameFromURL(f.URL)
}

// NameFromURL derives a display label from a URL's host. A leading "www." is
// stripped; with more than two host labels the second-to-last label is the
// candidate, except that a meaningful leading subdomain (one not in the
// ignorable set) is preferred, e.g. mail.google.com yields "Mail" while
// app.example.com yields "Example". Unparseable input yields the placeholder.
func NameFromURL(raw string) string {
	parsed, err := url.Parse(NormalizeURL(raw))
	if err != nil || parsed.Hostname() == "" {
		return PlaceholderName
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	parts := strings.Split(host, ".")

	candidate := parts[0]
	if len(parts) > 2 {
		candidate = parts[len(parts)-2]
		if !ignorableSubdomains[strings.ToLower(parts[0])] {
			candidate = parts[len(parts)-3]
		}
	}

	if candidate == "" {
		return PlaceholderName
	}
	return strings.ToUpper(candidate[:1]) + candidate[1:]
}
