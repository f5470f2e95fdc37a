// Package ui implements the start page: the favorites grid with its
// drag-reorder and context menu, the add/edit dialogs, the settings dialog
// with import/export, and the weather and clock widget.
package ui
