package client

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wangjian/alivod/auth"
	"github.com/wangjian/alivod/conf"
	"github.com/wangjian/alivod/internal/log"
)

// DebugMode 为 true 时以 Debug 级别记录每次请求的概要信息
var DebugMode = conf.IsDebugMode()

// Config 构建 Client 的参数配置，除 Credentials 外均可留空使用默认值
type Config struct {
	// Credentials 访问密钥，必填
	Credentials *auth.Credentials

	// Endpoint 服务接入地址，默认 http://vod.cn-shanghai.aliyuncs.com
	Endpoint string

	// Format 返回值格式，JSON 或 XML，默认 JSON
	Format string

	// Version API 版本，默认 2017-03-21
	Version string

	// SignatureMethod 签名算法，只支持 HMAC-SHA1
	SignatureMethod auth.SignatureMethod

	// SignatureVersion 签名算法版本，默认 1.0
	SignatureVersion string

	// HTTPMethod 支持 GET / POST，默认 GET
	// POST 时参数以 application/x-www-form-urlencoded 放在请求体中
	HTTPMethod string

	// Timeout 单次请求超时时间，默认 30s
	Timeout time.Duration

	// Transport 支持外部传入自定义 RoundTripper，默认使用 DefaultTransport
	Transport http.RoundTripper

	// Clock / Rand / ClientIP 生成 Timestamp 与 SignatureNonce 所用的依赖
	Clock    Clock
	Rand     rand.Source
	ClientIP IPSource
}

// Response 原始 HTTP 响应
type Response struct {
	StatusCode int
	Body       []byte
}

// Client 负责组装公共参数、签名和发送请求
type Client struct {
	credentials      *auth.Credentials
	endpoint         string
	format           string
	version          string
	signatureMethod  auth.SignatureMethod
	signatureVersion string
	httpMethod       string
	clock            Clock
	nonce            *NonceGenerator
	httpClient       *http.Client
}

// New 构建 Client，配置错误（如不支持的签名算法）在此处直接返回
func New(cfg Config) (*Client, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}
	if cfg.SignatureMethod == "" {
		cfg.SignatureMethod = conf.DefaultSignatureMethod
	}
	if err := auth.ValidateSignatureMethod(cfg.SignatureMethod); err != nil {
		return nil, errors.WithMessagef(err, "signature method %q", cfg.SignatureMethod)
	}
	cfg.HTTPMethod = strings.ToUpper(cfg.HTTPMethod)
	switch cfg.HTTPMethod {
	case "":
		cfg.HTTPMethod = http.MethodGet
	case http.MethodGet, http.MethodPost:
	default:
		return nil, errors.WithMessagef(ErrUnsupportedHTTPMethod, "http method %q", cfg.HTTPMethod)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = conf.DefaultEndpoint
	}
	if !strings.Contains(cfg.Endpoint, "://") {
		cfg.Endpoint = "http://" + cfg.Endpoint
	}
	if cfg.Format == "" {
		cfg.Format = conf.DefaultFormat
	}
	if cfg.Version == "" {
		cfg.Version = conf.DefaultAPIVersion
	}
	if cfg.SignatureVersion == "" {
		cfg.SignatureVersion = conf.DefaultSignatureVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = conf.DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = DefaultTransport
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}

	return &Client{
		credentials:      cfg.Credentials,
		endpoint:         strings.TrimRight(cfg.Endpoint, "/"),
		format:           cfg.Format,
		version:          cfg.Version,
		signatureMethod:  cfg.SignatureMethod,
		signatureVersion: cfg.SignatureVersion,
		httpMethod:       cfg.HTTPMethod,
		clock:            cfg.Clock,
		nonce:            NewNonceGenerator(cfg.Clock, cfg.Rand, cfg.ClientIP),
		httpClient: &http.Client{
			Transport: cfg.Transport,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// Endpoint 服务接入地址
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NewRequest 构建请求，合并公共参数与接口参数，接口参数同名时覆盖公共参数
func (c *Client) NewRequest(action string, params *Params) *Request {
	merged := NewParams().
		Set(ParamFormat, c.format).
		Set(ParamVersion, c.version).
		Set(ParamAccessKeyID, c.credentials.AccessKeyID).
		Set(ParamSignatureMethod, string(c.signatureMethod)).
		Set(ParamSignatureVersion, c.signatureVersion).
		Set(ParamTimestamp, c.clock.Now().UTC().Format(conf.TimestampLayout)).
		Set(ParamSignatureNonce, c.nonce.Nonce()).
		Set(ParamAction, action).
		Merge(params)
	return &Request{
		Action: action,
		Method: c.httpMethod,
		Params: merged,
	}
}

// Sign 计算签名并写入 Signature 参数
func (c *Client) Sign(req *Request) error {
	req.Params.Del(auth.SignatureParam)
	signature, err := c.credentials.Sign(c.signatureMethod, req.Method, req.Params.Map())
	if err != nil {
		return err
	}
	req.Params.Set(auth.SignatureParam, signature)
	return nil
}

// Do 签名并发送请求，返回原始响应
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := c.Sign(req); err != nil {
		return nil, err
	}

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", req.Action)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// url.Error 中带有完整的请求地址，其中包含 Signature
		if urlErr, ok := err.(*url.Error); ok {
			err = urlErr.Err
		}
		log.Warn("request failed", zap.String("action", req.Action), zap.Error(err))
		return nil, errors.Wrapf(err, "%s request failed", req.Action)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", req.Action)
	}
	if DebugMode {
		log.Debug("request finished",
			zap.String("action", req.Action),
			zap.String("method", req.Method),
			zap.String("endpoint", c.endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Int("bodySize", len(body)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Call 发送请求并解析响应体
// 服务端错误体现在 Envelope.Error 中；响应体无法解析且状态码非 2xx 时返回 *ErrorInfo
func (c *Client) Call(ctx context.Context, action string, params *Params) (*Envelope, error) {
	resp, err := c.Do(ctx, c.NewRequest(action, params))
	if err != nil {
		return nil, err
	}
	envelope, err := ParseEnvelope(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, err
	}
	if !envelope.OK() {
		log.Debug("service error",
			zap.String("action", action),
			zap.String("code", envelope.Error.Code),
			zap.String("requestId", envelope.RequestID),
		)
	} else if resp.StatusCode/100 != 2 {
		return nil, ErrInfo(resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return envelope, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var (
		httpReq *http.Request
		err     error
	)
	switch req.Method {
	case http.MethodGet:
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/?"+req.Params.Encode(), nil)
	case http.MethodPost:
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/", bytes.NewBufferString(req.Params.Encode()))
		if err == nil {
			httpReq.Header.Set("Content-Type", conf.CONTENT_TYPE_FORM)
		}
	default:
		return nil, ErrUnsupportedHTTPMethod
	}
	if err != nil {
		return nil, err
	}
	addDefaultHeader(httpReq.Header, c.format)
	return httpReq, nil
}
