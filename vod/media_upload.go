package vod

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wangjian/alivod/internal/log"
)

const defaultOSSRegion = "cn-shanghai"

// UploadOptions 上传媒体文件到 OSS 的可选参数
type UploadOptions struct {
	// ConnectTimeout 建立连接超时时间，默认 10s
	ConnectTimeout time.Duration

	// ReadWriteTimeout 读写超时时间，默认 30s
	ReadWriteTimeout time.Duration

	// UsePathStyle 以 path style 访问 Bucket，用于自建或测试环境
	UsePathStyle bool
}

// UploadMedia 使用 CreateUploadVideo、RefreshUploadVideo 或 CreateUploadImage 返回的上传地址和 STS 凭证，
// 将媒体文件上传到 OSS，返回对象的 ETag
func UploadMedia(ctx context.Context, address *UploadAddress, uploadAuth *UploadAuth, body io.Reader, options *UploadOptions) (string, error) {
	if address == nil || uploadAuth == nil || body == nil {
		return "", ErrInvalidArgs
	}
	if address.Endpoint == "" || address.Bucket == "" || address.FileName == "" {
		return "", ErrInfo(http.StatusBadRequest, "incomplete upload address")
	}
	if options == nil {
		options = &UploadOptions{}
	}
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	readWriteTimeout := options.ReadWriteTimeout
	if readWriteTimeout <= 0 {
		readWriteTimeout = 30 * time.Second
	}

	provider := credentials.NewStaticCredentialsProvider(uploadAuth.AccessKeyID, uploadAuth.AccessKeySecret, uploadAuth.SecurityToken)
	cfg := oss.LoadDefaultConfig().
		WithRegion(ossRegion(address.Endpoint)).
		WithEndpoint(address.Endpoint).
		WithCredentialsProvider(provider).
		WithConnectTimeout(connectTimeout).
		WithReadWriteTimeout(readWriteTimeout).
		WithUsePathStyle(options.UsePathStyle)
	ossClient := oss.NewClient(cfg)

	result, err := ossClient.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(address.Bucket),
		Key:    oss.Ptr(address.FileName),
		Body:   body,
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload %s to oss", address.FileName)
	}
	etag := oss.ToString(result.ETag)
	log.Debug("media uploaded",
		zap.String("bucket", address.Bucket),
		zap.String("key", address.FileName),
		zap.String("etag", etag),
	)
	return etag, nil
}

// ossRegion 从 OSS 地址中解析地域，例如 https://oss-cn-shanghai.aliyuncs.com 对应 cn-shanghai
func ossRegion(endpoint string) string {
	if i := strings.Index(endpoint, "://"); i >= 0 {
		endpoint = endpoint[i+3:]
	}
	host := strings.SplitN(endpoint, ".", 2)[0]
	if strings.HasPrefix(host, "oss-") {
		return strings.TrimSuffix(strings.TrimPrefix(host, "oss-"), "-internal")
	}
	return defaultOSSRegion
}
