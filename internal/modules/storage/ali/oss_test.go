package ali

import (
	"context"
	"strings"
	"testing"

	"github.com/reusedev/wp-hub/config"
	"github.com/stretchr/testify/require"
)

func TestFullPath(t *testing.T) {
	client, err := NewOSS(config.AliOss{Endpoint: "oss-cn-hangzhou.aliyuncs.com", Region: "cn-hangzhou", Bucket: "b", Directory: "wp_hub/"})
	require.NoError(t, err)
	name := newFileName(".png")
	require.True(t, strings.HasSuffix(name, ".png"))
	require.Equal(t, "wp_hub/"+name, client.fullPath(name))
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	client, err := NewOSS(config.AliOss{Endpoint: "oss-cn-hangzhou.aliyuncs.com", Region: "cn-hangzhou", Bucket: "b"})
	require.NoError(t, err)
	_, err = client.UploadImage(context.Background(), []byte("plain text, not a picture"))
	require.Error(t, err)
}
