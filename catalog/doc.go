// Package catalog loads the tabular book catalog.
//
// The catalog is the authoritative source of book metadata and precomputed
// emotion scores. Rows are parsed once at startup into core.BookRecord
// values, at which point the large-thumbnail display field is derived. Load
// failures are fatal to initialization; a partially loaded catalog would
// silently drop candidates during the recommendation join.
package catalog
