package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"config-diff/core/storage"
	"config-diff/feature/compare"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report describes one published report object.
type Report struct {
	RunID        string    `json:"run_id"`
	Object       string    `json:"object"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service uploads written reports to object storage.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Name identifies the service as a compare sink.
func (s *Service) Name() string {
	return "publish"
}

// ObjectName returns the object key for a run's report file.
func (s *Service) ObjectName(runID, fileName string) string {
	return path.Join(s.prefix, runID, fileName)
}

// Store uploads the report at reportPath under "<prefix>/<run id>/<file name>".
// The bucket is created when it does not exist.
func (s *Service) Store(ctx context.Context, res *compare.Result, reportPath string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", reportPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat report %s: %w", reportPath, err)
	}

	object := s.ObjectName(res.RunID, filepath.Base(reportPath))
	_, err = s.client.PutObject(ctx, s.bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
		UserMetadata: map[string]string{
			"run-id":  res.RunID,
			"folders": strings.Join(res.Folders, ","),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.Info("Report published", zap.String("bucket", s.bucket), zap.String("object", object))
	return nil
}

// List returns the published reports, newest first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    s.listPrefix(),
		Recursive: true,
	}

	var reports []Report
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		runID, ok := s.runID(obj.Key)
		if !ok {
			continue
		}
		reports = append(reports, Report{
			RunID:        runID,
			Object:       obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].LastModified.After(reports[j].LastModified)
	})
	return reports, nil
}

// Fetch copies a published report object to w.
func (s *Service) Fetch(ctx context.Context, object string, w io.Writer) error {
	rc, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get report %s: %w", object, err)
	}
	defer rc.Close()

	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("failed to download report %s: %w", object, err)
	}
	return nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created report bucket", zap.String("bucket", s.bucket))
	return nil
}

// listPrefix is the key prefix shared by every report, empty for a bucket root.
func (s *Service) listPrefix() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}

// runID extracts the run id from "<prefix>/<run id>/<file>".
func (s *Service) runID(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, s.listPrefix())
	if !ok {
		return "", false
	}
	runID, file, ok := strings.Cut(rest, "/")
	if !ok || runID == "" || file == "" {
		return "", false
	}
	return runID, true
}
