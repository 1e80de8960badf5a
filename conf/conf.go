package conf

import (
	"time"

	"github.com/wangjian/alivod/internal/env"
)

const Version = "1.0.0"

const (
	// DefaultEndpoint VOD 服务接入地址
	DefaultEndpoint = "http://vod.cn-shanghai.aliyuncs.com"

	// DefaultFormat 返回值格式
	DefaultFormat = "JSON"

	// DefaultAPIVersion API 版本
	DefaultAPIVersion = "2017-03-21"

	// DefaultSignatureMethod 签名算法
	DefaultSignatureMethod = "HMAC-SHA1"

	// DefaultSignatureVersion 签名算法版本
	DefaultSignatureVersion = "1.0"

	// DefaultTimeout 单次请求的超时时间
	DefaultTimeout = 30 * time.Second

	// TimestampLayout 公共参数 Timestamp 的格式，UTC 时间
	TimestampLayout = "2006-01-02T15:04:05Z"
)

const (
	CONTENT_TYPE_JSON = "application/json"
	CONTENT_TYPE_FORM = "application/x-www-form-urlencoded"
)

func IsDebugMode() bool {
	isDebug, _ := env.DebugFromEnvironment()
	return isDebug
}
