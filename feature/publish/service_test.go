package publish

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"config-diff/core/storage/mocks"
	"config-diff/feature/compare"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeReport(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, os.WriteFile(path, []byte("File,Group,Key\n"), 0644))
	return path
}

func TestService_Store(t *testing.T) {
	res := &compare.Result{RunID: "run-1", Folders: []string{"a", "b"}}

	t.Run("Existing Bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "reports", "/history/", zap.NewNop())
		path := writeReport(t)

		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "reports", "history/run-1/result.csv", mock.Anything, int64(15),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return opts.ContentType == "text/csv" && opts.UserMetadata["run-id"] == "run-1"
			})).Return(minio.UploadInfo{}, nil)

		assert.NoError(t, svc.Store(context.Background(), res, path))
		mockClient.AssertExpectations(t)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "reports", "reports", zap.NewNop())
		path := writeReport(t)

		mockClient.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "reports", "reports/run-1/result.csv", mock.Anything, int64(15), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		assert.NoError(t, svc.Store(context.Background(), res, path))
		mockClient.AssertExpectations(t)
	})

	t.Run("Bucket Check Fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "reports", "reports", zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "reports").Return(false, errors.New("unreachable"))

		err := svc.Store(context.Background(), res, writeReport(t))
		assert.ErrorContains(t, err, "unreachable")
	})

	t.Run("Missing Report File", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "reports", "reports", zap.NewNop())

		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		err := svc.Store(context.Background(), res, filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_List(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "reports", "reports", zap.NewNop())

	now := time.Now()
	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "reports/old/result.csv", Size: 10, LastModified: now.Add(-time.Hour)}
	ch <- minio.ObjectInfo{Key: "reports/stray.csv", Size: 1, LastModified: now}
	ch <- minio.ObjectInfo{Key: "reports/new/result.csv", Size: 20, LastModified: now}
	close(ch)

	mockClient.On("ListObjects", mock.Anything, "reports", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "reports/" && opts.Recursive
	})).Return((<-chan minio.ObjectInfo)(ch))

	reports, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "new", reports[0].RunID)
	assert.Equal(t, "old", reports[1].RunID)
	assert.Equal(t, int64(20), reports[0].Size)
}

func TestService_ListBucketRoot(t *testing.T) {
	now := time.Now()
	newList := func() <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, 2)
		ch <- minio.ObjectInfo{Key: "run-1/result.csv", Size: 10, LastModified: now}
		ch <- minio.ObjectInfo{Key: "stray.csv", Size: 1, LastModified: now}
		close(ch)
		return ch
	}

	for _, tc := range []struct{ name, prefix string }{
		{"Empty Prefix", ""},
		{"Slash Prefix", "/"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			svc := NewService(mockClient, "reports", tc.prefix, zap.NewNop())
			assert.Equal(t, "run-1/result.csv", svc.ObjectName("run-1", "result.csv"))

			mockClient.On("ListObjects", mock.Anything, "reports", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == "" && opts.Recursive
			})).Return(newList())

			reports, err := svc.List(context.Background())
			require.NoError(t, err)
			require.Len(t, reports, 1)
			assert.Equal(t, "run-1", reports[0].RunID)
			assert.Equal(t, "run-1/result.csv", reports[0].Object)
		})
	}
}

func TestService_ListError(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "reports", "reports", zap.NewNop())

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "reports", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := svc.List(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestService_Fetch(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "reports", "reports", zap.NewNop())

	mockClient.On("GetObject", mock.Anything, "reports", "reports/run-1/result.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewBufferString("File,Group\n")), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Fetch(context.Background(), "reports/run-1/result.csv", &buf))
	assert.Equal(t, "File,Group\n", buf.String())
}
