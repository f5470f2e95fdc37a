package icon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDataURL(t *testing.T) {
	// Minimal PNG header so content sniffing picks image/png
	data := []byte("\x89PNG\r\n\x1a\n rest of the image")

	result := DataURL(data)
	if !strings.HasPrefix(result, "data:image/png;base64,") {
		t.Errorf("Expected a png data URL, got %q", result)
	}
}

func TestReadDataURL(t *testing.T) {
	result, err := ReadDataURL(bytes.NewReader([]byte("\x89PNG\r\n\x1a\nabc")))
	if err != nil {
		t.Fatalf("ReadDataURL() failed: %v", err)
	}
	if !strings.HasPrefix(result, "data:image/png;base64,") {
		t.Errorf("Expected a png data URL, got %q", result)
	}
}

func TestReadDataURLOversized(t *testing.T) {
	oversized := bytes.Repeat([]byte{0xab}, MaxAssetBytes+1)

	_, err := ReadDataURL(bytes.NewReader(oversized))
	if !errors.Is(err, ErrOversizedAsset) {
		t.Errorf("Expected oversized asset error, got %v", err)
	}
}

func TestReadDataURLAtLimit(t *testing.T) {
	exact := bytes.Repeat([]byte{0xab}, MaxAssetBytes)

	if _, err := ReadDataURL(bytes.NewReader(exact)); err != nil {
		t.Errorf("An image exactly at the limit should be accepted, got %v", err)
	}
}

func TestRemoteFaviconURL(t *testing.T) {
	tests := []struct {
		pageURL  string
		expected string
	}{
		{"https://github.com/some/repo", "https://www.google.com/s2/favicons?domain=github.com&sz=32"},
		{"https://mail.google.com", "https://www.google.com/s2/favicons?domain=mail.google.com&sz=32"},
		{"not a url at all", ""},
		{"", ""},
	}

	for _, test := range tests {
		if result := RemoteFaviconURL(test.pageURL); result != test.expected {
			t.Errorf("RemoteFaviconURL(%q) = %q, expected %q", test.pageURL, result, test.expected)
		}
	}
}

func TestPageIconURL(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string // relative to the test server base
	}{
		{
			name: "declared icon link",
			html: `<html><head><link rel="icon" href="/static/fav.png"></head></html>`,
			want: "/static/fav.png",
		},
		{
			name: "shortcut icon",
			html: `<html><head><link rel="shortcut icon" href="/fav.ico"></head></html>`,
			want: "/fav.ico",
		},
		{
			name: "apple touch icon",
			html: `<html><head><link rel="apple-touch-icon" href="/touch.png"></head></html>`,
			want: "/touch.png",
		},
		{
			name: "no icon declared",
			html: `<html><head><link rel="stylesheet" href="/style.css"></head></html>`,
			want: "/favicon.ico",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, test.html)
			}))
			defer server.Close()

			result, err := NewDiscoverer().PageIconURL(context.Background(), server.URL)
			if err != nil {
				t.Fatalf("PageIconURL() failed: %v", err)
			}
			if result != server.URL+test.want {
				t.Errorf("PageIconURL() = %q, expected %q", result, server.URL+test.want)
			}
		})
	}
}

func TestPageIconURLAbsoluteHref(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><link rel="icon" href="https://cdn.example.com/fav.svg"></head></html>`)
	}))
	defer server.Close()

	result, err := NewDiscoverer().PageIconURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("PageIconURL() failed: %v", err)
	}
	if result != "https://cdn.example.com/fav.svg" {
		t.Errorf("Absolute hrefs should pass through, got %q", result)
	}
}

func TestPageIconURLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	discoverer := NewDiscoverer()
	if _, err := discoverer.PageIconURL(context.Background(), server.URL); err == nil {
		t.Error("A non-200 response should fail discovery")
	}
	if _, err := discoverer.PageIconURL(context.Background(), "::bad::"); err == nil {
		t.Error("An unparsable page URL should fail discovery")
	}
}
