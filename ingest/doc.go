// Package ingest builds the shared read-only state the recommender queries:
// the catalog store and the embedded description index.
//
// The build is a one-time blocking initialization phase. Catalog rows load
// sequentially; description embedding fans out over a bounded worker pool,
// batching provider calls. Any failure aborts the build, because a partially
// built index or catalog silently corrupts recommendation joins.
package ingest
