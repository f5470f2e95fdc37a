package icon

// Package icon resolves tile and background imagery: favicon URLs for
// favorites, icon discovery from a page's markup, and embedding uploaded
// images as data URLs with a hard size cap.
