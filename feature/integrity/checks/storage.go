package checks

import (
	"context"
	"fmt"
	"strings"

	"config-diff/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the state of the report bucket.
type StorageReport struct {
	Bucket  string   `json:"bucket"`
	Exists  bool     `json:"exists"`
	Reports int      `json:"reports"`
	Stray   []string `json:"stray"`
}

// CheckStorage verifies the report bucket exists and that every object under
// prefix follows the "<prefix>/<run id>/<file>" layout.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Stray: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	root := strings.Trim(prefix, "/")
	if root != "" {
		root += "/"
	}
	opts := minio.ListObjectsOptions{
		Prefix:    root,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		runID, file, ok := strings.Cut(strings.TrimPrefix(obj.Key, root), "/")
		if !ok || runID == "" || file == "" || strings.Contains(file, "/") {
			report.Stray = append(report.Stray, obj.Key)
			continue
		}
		report.Reports++
	}

	return report, nil
}

// FixStorage creates the report bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
