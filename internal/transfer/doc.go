package transfer

// Package transfer serializes settings to and from JSON files. Exports and
// imports are scoped: the whole settings object, the bare favorites array,
// or settings without favorites. Imports are shape-checked per scope and
// never partially applied; a failed import leaves current settings untouched.
