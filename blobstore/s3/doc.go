// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	client := s3.NewFromConfig(cfg)
//	store := nps3.NewStore(client, "my-bucket", "closest-pair/")
//
//	err = table.Write(ctx, store, "result.csv", rows, table.DefaultOptions())
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads via the SDK upload manager
//   - CRC32C checksums on every write
//   - Automatic pagination for listing
package s3
