package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Plain Endpoint", Config{Endpoint: "localhost:9000", AccessKey: "testkey", SecretKey: "testsecret", Bucket: "configdiff"}},
		{"HTTP Endpoint", Config{Endpoint: "http://localhost:9000/", AccessKey: "testkey", SecretKey: "testsecret"}},
		{"HTTPS Endpoint", Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "testkey", SecretKey: "testsecret", Region: "us-east-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	t.Run("HTTPS Endpoint Enables TLS", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "https://s3.amazonaws.com"})
		require.NoError(t, err)
		store := client.(*reportStore)
		assert.Equal(t, "https", store.EndpointURL().Scheme)
		assert.Equal(t, "s3.amazonaws.com", store.EndpointURL().Host)
	})
}

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		endpoint string
		secure   bool
	}{
		{"Bare Host", "localhost:9000", "localhost:9000", false},
		{"HTTP Scheme", "http://minio:9000", "minio:9000", false},
		{"HTTPS Scheme", "https://s3.amazonaws.com", "s3.amazonaws.com", true},
		{"Trailing Slash", "https://s3.amazonaws.com/", "s3.amazonaws.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, secure := splitEndpoint(tt.raw)
			assert.Equal(t, tt.endpoint, endpoint)
			assert.Equal(t, tt.secure, secure)
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, Config{}.Timeout())
	assert.Equal(t, DefaultTimeout, Config{TimeoutSeconds: -1}.Timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.Timeout())

	tr := newTransport(5 * time.Second)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 5*time.Second, tr.ResponseHeaderTimeout)
}
