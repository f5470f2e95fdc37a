package model

// Package model defines domain data structures used across the app: favorite
// shortcuts, the settings aggregate, and weather readings. Structures are
// designed for direct binding in the UI and for whole-object JSON snapshots.
