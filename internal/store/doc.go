// Package store provides file-based persistence for built problems and the
// plans returned for them.
//
// Each record is one JSON file under the configured home directory:
//
//	<home>/problems/<name>.json
//	<home>/plans/<name>.json
//
// Writes go through a temp file and a rename, so readers never observe a
// partially written record. All methods are safe for concurrent use.
package store
