// Package platform contains OS-specific glue, currently launching URLs in
// the system browser.
package platform
