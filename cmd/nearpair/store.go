package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/nearpair/blobstore"
	minioblob "github.com/hupe1980/nearpair/blobstore/minio"
	s3blob "github.com/hupe1980/nearpair/blobstore/s3"
	"github.com/hupe1980/nearpair/internal/resource"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/pflag"
)

type storeOpts struct {
	kind      string
	root      string
	bucket    string
	prefix    string
	endpoint  string
	region    string
	accessKey string
	secretKey string
	insecure  bool
	ioLimit   int64
}

func (o *storeOpts) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.kind, "store", "local", "Blob store holding inputs and outputs: local, s3 or minio")
	flags.StringVar(&o.root, "root", ".", "Directory of the local store")
	flags.StringVar(&o.bucket, "bucket", "", "Bucket for the s3 and minio stores")
	flags.StringVar(&o.prefix, "prefix", "", "Key prefix inside the bucket")
	flags.StringVar(&o.endpoint, "endpoint", "", "Endpoint of the minio store, or a custom S3 endpoint")
	flags.StringVar(&o.region, "region", "", "Bucket region")
	flags.StringVar(&o.accessKey, "access-key", "", "Access key for the minio store")
	flags.StringVar(&o.secretKey, "secret-key", "", "Secret key for the minio store")
	flags.BoolVar(&o.insecure, "insecure", false, "Use plain HTTP for the minio store")
	flags.Int64Var(&o.ioLimit, "io-limit", 0, "Maximum store throughput in bytes per second; 0 for unlimited")
}

// open returns the configured store, throttled by rc.
func (o *storeOpts) open(ctx context.Context, rc *resource.Controller) (blobstore.BlobStore, error) {
	store, err := o.backend(ctx)
	if err != nil {
		return nil, err
	}
	return rc.Store(store), nil
}

func (o *storeOpts) backend(ctx context.Context) (blobstore.BlobStore, error) {
	switch o.kind {
	case "local":
		return blobstore.NewLocalStore(o.root), nil
	case "s3":
		if o.bucket == "" {
			return nil, fmt.Errorf("--bucket is required for the s3 store")
		}
		var loadOpts []func(*config.LoadOptions) error
		if o.region != "" {
			loadOpts = append(loadOpts, config.WithRegion(o.region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(cfg, func(opts *s3.Options) {
			if o.endpoint != "" {
				opts.BaseEndpoint = aws.String(o.endpoint)
				opts.UsePathStyle = true
			}
		})
		return s3blob.NewStore(client, o.bucket, o.prefix), nil
	case "minio":
		if o.bucket == "" || o.endpoint == "" {
			return nil, fmt.Errorf("--bucket and --endpoint are required for the minio store")
		}
		client, err := minio.New(o.endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(o.accessKey, o.secretKey, ""),
			Secure: !o.insecure,
			Region: o.region,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		store := minioblob.NewStore(client, o.bucket, o.prefix)
		if err := store.EnsureBucket(ctx, o.region); err != nil {
			return nil, fmt.Errorf("minio bucket %s: %w", o.bucket, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown --store %q", o.kind)
	}
}
