package ali

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/reusedev/wp-hub/config"
)

type OssClient struct {
	client     *oss.Client
	bucketName string
	directory  string
}

func NewOSS(config config.AliOss) (*OssClient, error) {
	credential := credentials.NewStaticCredentialsProvider(config.AccessKeyId, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(config.Endpoint).WithRegion(config.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		return nil, fmt.Errorf("create oss client failed")
	}
	return &OssClient{
		client:     client,
		bucketName: config.Bucket,
		directory:  config.Directory,
	}, nil
}

// UploadImage stores b under a fresh key whose extension follows the sniffed content type.
func (o *OssClient) UploadImage(ctx context.Context, b []byte) (string, error) {
	mime := mimetype.Detect(b)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("not an image: %s", mime.String())
	}
	fName := newFileName(mime.Extension())
	key := o.fullPath(fName)
	request := &oss.PutObjectRequest{
		Bucket:      oss.Ptr(o.bucketName),
		Key:         oss.Ptr(key),
		Body:        bytes.NewReader(b),
		ContentType: oss.Ptr(mime.String()),
	}
	if _, err := o.client.PutObject(ctx, request); err != nil {
		return "", err
	}
	return key, nil
}

func (o *OssClient) URL(ctx context.Context, key string, expire time.Duration) (string, error) {
	ret, err := o.client.Presign(ctx, &oss.GetObjectRequest{Bucket: oss.Ptr(o.bucketName), Key: oss.Ptr(key)}, oss.PresignExpires(expire))
	if err != nil {
		return "", err
	}
	return ret.URL, nil
}

func (o *OssClient) fullPath(fName string) string {
	return o.directory + fName
}

func newFileName(ext string) string {
	return uuid.New().String() + ext
}
