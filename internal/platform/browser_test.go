package platform

import "testing"

func TestOpenInBrowserEmptyURL(t *testing.T) {
	if err := OpenInBrowser(""); err == nil {
		t.Error("OpenInBrowser() with an empty URL should fail")
	}
	if err := OpenInBrowser("   "); err == nil {
		t.Error("OpenInBrowser() with a blank URL should fail")
	}
}
