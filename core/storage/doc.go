// Package storage connects to the S3 compatible bucket that receives reports.
//
// The publish feature uploads each run's CSV report under
// "<prefix>/<run id>/<file>" and lists or fetches it back; the integrity
// feature checks the bucket and its key layout. Both depend only on the Client
// interface, mocked in core/storage/mocks.
//
// NewClient wraps minio-go with a transport whose dial, TLS and first-byte
// timeouts come from Config.Timeout. An https:// endpoint turns on TLS.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
