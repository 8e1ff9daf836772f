package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	// DefaultTimeout bounds dialing, the TLS handshake and the first response
	// byte when Config.TimeoutSeconds is unset.
	DefaultTimeout = 30 * time.Second

	keepAlive   = 30 * time.Second
	idleTimeout = 90 * time.Second
)

// Client is the slice of the object store used to publish and audit reports.
type Client interface {
	// BucketExists reports whether the report bucket is present.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates the report bucket before the first upload or on check --fix.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// PutObject uploads one report file.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject streams a published report back.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects walks the published reports under a key prefix.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// NewClient connects to the S3 compatible store that receives reports.
// An https:// endpoint enables TLS even when UseSSL is false.
func NewClient(cfg Config) (Client, error) {
	endpoint, secure := splitEndpoint(cfg.Endpoint)

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure || cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(cfg.Timeout()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report storage client for %s: %w", endpoint, err)
	}

	// minio connects lazily, the first bucket call surfaces an unreachable store.
	return &reportStore{Client: mc}, nil
}

// Timeout returns the transport timeout, DefaultTimeout when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// splitEndpoint strips the scheme minio rejects and reports whether it was https.
func splitEndpoint(raw string) (string, bool) {
	if rest, ok := strings.CutPrefix(raw, "https://"); ok {
		return strings.TrimSuffix(rest, "/"), true
	}
	return strings.TrimSuffix(strings.TrimPrefix(raw, "http://"), "/"), false
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: keepAlive,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       idleTimeout,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// reportStore narrows *minio.Object to an io.ReadCloser so Client can be mocked.
type reportStore struct {
	*minio.Client
}

func (s *reportStore) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return s.Client.GetObject(ctx, bucketName, objectName, opts)
}
