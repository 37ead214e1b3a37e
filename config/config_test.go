package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitMissingFile(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "absent.yml"))
	require.Equal(t, "structural", GConfig.Placement.Strategy)
	require.Equal(t, "freeimage", GConfig.ImageHost.Provider)
	require.Equal(t, "https://freeimage.host/api/1/upload", GConfig.ImageHost.UploadURL)
	require.Equal(t, 30*time.Second, GConfig.WordPressTimeout())
	require.True(t, GConfig.ConcurrentUpload())
}

func TestInitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
log_level: debug
wordpress:
  timeout: 10s
image_host:
  upload_url: http://127.0.0.1:9999/upload
  timeout: 5s
  concurrent: false
placement:
  strategy: proportional
`)
	require.NoError(t, os.WriteFile(path, data, 0644))
	Init(path)
	require.Equal(t, "debug", GConfig.LogLevel)
	require.Equal(t, "proportional", GConfig.Placement.Strategy)
	require.Equal(t, "http://127.0.0.1:9999/upload", GConfig.ImageHost.UploadURL)
	require.Equal(t, 10*time.Second, GConfig.WordPressTimeout())
	require.Equal(t, 5*time.Second, GConfig.ImageHostTimeout())
	require.False(t, GConfig.ConcurrentUpload())
}

func TestInitEnvOverride(t *testing.T) {
	t.Setenv("WP_HUB_PLACEMENT", "proportional")
	Init(filepath.Join(t.TempDir(), "absent.yml"))
	require.Equal(t, "proportional", GConfig.Placement.Strategy)
}

func TestVerify(t *testing.T) {
	c := Default()
	require.NoError(t, c.Verify())

	c.Placement.Strategy = "random"
	require.Error(t, c.Verify())

	c = Default()
	c.ImageHost.Provider = "ali_oss"
	require.Error(t, c.Verify())
	c.AliOss.Bucket = "bucket"
	c.AliOss.Endpoint = "oss-cn-hangzhou.aliyuncs.com"
	require.NoError(t, c.Verify())

	c = Default()
	c.WordPress.Timeout = "soon"
	require.Error(t, c.Verify())
}

func TestInitMalformedPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("placement: [unterminated"), 0644))
	require.Panics(t, func() { Init(path) })
}
