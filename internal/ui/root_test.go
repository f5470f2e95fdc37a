package ui

import (
	"encoding/base64"
	"image/color"
	"testing"
)

func TestBackgroundResource(t *testing.T) {
	payload := []byte("fake image bytes")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	resource, ok := backgroundResource(dataURL)
	if !ok {
		t.Fatal("Expected a valid data URL to decode")
	}
	if string(resource.Content()) != string(payload) {
		t.Errorf("Decoded content does not match the embedded payload")
	}

	if _, ok := backgroundResource("data:image/png;base64,!!!not-base64!!!"); ok {
		t.Error("Expected invalid base64 to be rejected")
	}
	if _, ok := backgroundResource("https://example.com/bg.png"); ok {
		t.Error("Expected a remote URL to be rejected by the data URL decoder")
	}
}

func TestIsRemoteImageURL(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"https://example.com/bg.png", true},
		{"http://example.com/bg.png", true},
		{"data:image/png;base64,AAAA", false},
		{"ftp://example.com/bg.png", false},
		{"", false},
	}

	for _, test := range tests {
		if got := isRemoteImageURL(test.value); got != test.want {
			t.Errorf("isRemoteImageURL(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	want := color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 255}
	if c := parseHexColor("#1e1e2e"); c != want {
		t.Errorf("Expected #1e1e2e to parse to %v, got %v", want, c)
	}
	for _, bad := range []string{"", "#12345", "1e1e2e", "#gggggg"} {
		if c := parseHexColor(bad); c != color.Transparent {
			t.Errorf("Expected %q to fall back to transparent, got %v", bad, c)
		}
	}
}
