package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/storage"
)

func TestConfig_Finalize(t *testing.T) {
	cfg := &storage.Config{}
	require.NoError(t, cfg.Finalize(nil))
	assert.Equal(t, "product_images", cfg.Bucket)
	assert.Equal(t, int64(10_000_000), cfg.MaxUploadSizeBytes())
	assert.False(t, cfg.UniqueNames)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_STORAGE_BUCKET", "listing_photos")
	t.Setenv("TEST_STORAGE_MAX", "2MB")
	t.Setenv("TEST_STORAGE_UNIQUE", "true")

	cfg := &storage.Config{}
	require.NoError(t, cfg.Finalize(&storage.Env{
		Bucket:        "TEST_STORAGE_BUCKET",
		MaxUploadSize: "TEST_STORAGE_MAX",
		UniqueNames:   "TEST_STORAGE_UNIQUE",
	}))
	assert.Equal(t, "listing_photos", cfg.Bucket)
	assert.Equal(t, int64(2_000_000), cfg.MaxUploadSizeBytes())
	assert.True(t, cfg.UniqueNames)
}

func TestConfig_Invalid(t *testing.T) {
	for _, size := range []string{"huge", "0B"} {
		cfg := &storage.Config{MaxUploadSize: size}
		assert.Error(t, cfg.Finalize(nil), size)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &storage.Config{Bucket: "a", MaxUploadSize: "10MB"}
	base.Merge(&storage.Config{MaxUploadSize: "5MB", UniqueNames: true})

	assert.Equal(t, "a", base.Bucket)
	assert.Equal(t, "5MB", base.MaxUploadSize)
	assert.Equal(t, int64(5_000_000), base.MaxUploadSizeBytes())
	assert.True(t, base.UniqueNames)
}
