// Package table reads and writes rectangular tables of float64 values as
// delimited text.
//
// Each row is one line and values are joined by the delimiter. Numbers are
// formatted with the shortest representation that round-trips, so a table
// written and read back yields identical values. An optional header line
// precedes the rows.
//
// Tables are stored in a blobstore.BlobStore, optionally compressed with zstd
// or lz4:
//
//	opts := table.DefaultOptions()
//	opts.Header = []string{"x", "y"}
//	err := table.Write(ctx, store, "result.csv.zst", rows, opts)
package table
