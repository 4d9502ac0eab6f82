package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/packetery/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testStorageConfig(endpoint string) *config.StorageConfig {
	return &config.StorageConfig{
		Enabled:         true,
		Bucket:          "packetery-archive",
		Region:          "eu-central-1",
		Endpoint:        endpoint,
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		UsePathStyle:    true,
	}
}

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{Region: "eu-central-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("access key without secret returns error", func(t *testing.T) {
		cfg := testStorageConfig("")
		cfg.SecretAccessKey = ""
		_, err := NewS3ObjectStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret access key is required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		s, err := NewS3ObjectStorage(testStorageConfig("localhost:9000"))
		require.NoError(t, err)
		assert.Equal(t, "packetery-archive", s.GetBucket())
	})
}

func TestS3ObjectStorage_GenerateDownloadURL(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig("http://localhost:9000"), WithPresignExpiration(time.Hour))
	require.NoError(t, err)

	t.Run("presigns the object path", func(t *testing.T) {
		link, err := s.GenerateDownloadURL(context.Background(), "labels/2024/05/01/101500-packeta_labels_a6_on_a4.pdf", 0)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "http://localhost:9000/packetery-archive/labels/2024/05/01/"))
		assert.Contains(t, link, "X-Amz-Expires=3600")
	})

	t.Run("empty key returns error", func(t *testing.T) {
		_, err := s.GenerateDownloadURL(context.Background(), "", 0)
		assert.Error(t, err)
	})
}

func TestS3ObjectStorage_Archive(t *testing.T) {
	var mu sync.Mutex
	var method, path string
	var received int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		method, path, received = r.Method, r.URL.Path, len(body)
		mu.Unlock()
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, err := NewS3ObjectStorage(testStorageConfig(server.URL), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	link, err := s.Archive(context.Background(), "handover/2024/05/01/101500-handover.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Contains(t, link, "/packetery-archive/handover/2024/05/01/101500-handover.pdf")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/packetery-archive/handover/2024/05/01/101500-handover.pdf", path)
	assert.Positive(t, received)
}

func TestS3ObjectStorage_Upload_EmptyKey(t *testing.T) {
	s, err := NewS3ObjectStorage(testStorageConfig("http://localhost:9000"))
	require.NoError(t, err)

	err = s.Upload(context.Background(), "", []byte("x"), "application/pdf")
	assert.Error(t, err)
}

func TestArchiveKey(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, "labels/2024/05/01/101500-packeta_labels_a6_on_a4.pdf",
		ArchiveKey("labels", "packeta_labels_a6_on_a4.pdf", at))
}

func TestNoopArchive(t *testing.T) {
	a := NewNoopArchive(zaptest.NewLogger(t))

	link, err := a.Archive(context.Background(), "labels/x.pdf", []byte("x"), "application/pdf")
	require.NoError(t, err)
	assert.Empty(t, link)

	_, err = a.Archive(context.Background(), "", nil, "")
	assert.Error(t, err)
}
