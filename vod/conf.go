package vod

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/wangjian/alivod/auth"
	"github.com/wangjian/alivod/client"
	"github.com/wangjian/alivod/conf"
)

const (
	// APIHost 默认接入地址（华东2 上海）
	APIHost = conf.DefaultEndpoint

	// HTTPMethodGet / HTTPMethodPost 支持的请求方式
	HTTPMethodGet  = http.MethodGet
	HTTPMethodPost = http.MethodPost

	// FormatJSON / FormatXML 返回值格式，SDK 只解析 JSON
	FormatJSON = "JSON"
	FormatXML  = "XML"

	// SignatureMethodHMACSHA1 唯一支持的签名算法
	SignatureMethodHMACSHA1 = string(auth.SignatureMethodHMACSHA1)
)

// ManagerConfig 构建 Manager 的参数配置
type ManagerConfig struct {
	// AccessKeyID 访问密钥 ID
	// 与 AccessKeySecret 同时留空时，使用 CredentialsProvider 获取
	AccessKeyID string

	// AccessKeySecret 访问密钥
	AccessKeySecret string

	// CredentialsProvider 获取密钥的方式
	// 留空即使用默认值，依次读取环境变量 ALIBABA_CLOUD_ACCESS_KEY_ID / ALIBABA_CLOUD_ACCESS_KEY_SECRET
	// 和配置文件 ~/.alivod/config.toml
	CredentialsProvider auth.CredentialsProvider

	// Endpoint 访问 API 的地址，例如 http://vod.cn-shanghai.aliyuncs.com
	// 留空时依次读取环境变量 ALIVOD_ENDPOINT、配置文件，最后使用 APIHost
	Endpoint string

	// Format 返回值格式，留空即使用 JSON
	Format string

	// Version API 版本，留空即使用 2017-03-21
	Version string

	// SignatureMethod 签名算法，留空即使用 HMAC-SHA1
	// 其他取值会导致 NewManager 返回 auth.ErrUnsupportedSignatureMethod
	SignatureMethod string

	// SignatureVersion 签名算法版本，留空即使用 1.0
	SignatureVersion string

	// HTTPMethod 请求方式，支持 GET / POST，留空即使用 GET
	HTTPMethod string

	// Timeout 单次请求超时时间
	// 留空时依次读取环境变量 ALIVOD_TIMEOUT、配置文件，最后使用 30s
	Timeout time.Duration

	// Transport 支持外部传入自定义 RoundTripper，用于 HTTP 代理等逻辑
	// 留空即使用 client.DefaultTransport
	Transport http.RoundTripper

	// Clock 生成 Timestamp 和 SignatureNonce 的时间来源，留空即使用系统时间
	Clock client.Clock

	// Rand 生成 SignatureNonce 的随机源，留空即使用以当前时间为种子的随机源
	Rand rand.Source

	// ClientIP 参与生成 SignatureNonce 的客户端 IP，留空即不附带
	// 在 HTTP 服务中可以使用 func() string { return client.IPFromRequest(r) }
	ClientIP client.IPSource
}
