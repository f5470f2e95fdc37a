package favorites

// Package favorites implements the favorites editor: add, edit, remove with
// an undo window, and drag reordering. Every operation ends in a whole-object
// save through the settings store; unknown ids are silent no-ops.
