package vod

import (
	"context"

	"github.com/pkg/errors"

	"github.com/wangjian/alivod/auth"
	"github.com/wangjian/alivod/client"
	"github.com/wangjian/alivod/internal/configfile"
	"github.com/wangjian/alivod/internal/env"
)

// Manager 提供了阿里云视频点播 VOD API 相关功能
type Manager struct {
	client *client.Client
}

// NewManager 用于构建一个新的 Manager
// 缺少密钥、签名算法或请求方式不受支持时返回错误，此时不会发出任何请求
func NewManager(conf ManagerConfig) (*Manager, error) {
	credentials, err := resolveCredentials(conf)
	if err != nil {
		return nil, err
	}
	if conf.Endpoint == "" {
		conf.Endpoint = env.EndpointFromEnvironment()
	}
	if conf.Endpoint == "" {
		if endpoint, err := configfile.EndpointFromConfigFile(); err == nil {
			conf.Endpoint = endpoint
		}
	}
	if conf.Timeout <= 0 {
		if timeout, ok := env.TimeoutFromEnvironment(); ok {
			conf.Timeout = timeout
		} else if timeout, err := configfile.TimeoutFromConfigFile(); err == nil {
			conf.Timeout = timeout
		}
	}

	c, err := client.New(client.Config{
		Credentials:      credentials,
		Endpoint:         conf.Endpoint,
		Format:           conf.Format,
		Version:          conf.Version,
		SignatureMethod:  auth.SignatureMethod(conf.SignatureMethod),
		SignatureVersion: conf.SignatureVersion,
		HTTPMethod:       conf.HTTPMethod,
		Timeout:          conf.Timeout,
		Transport:        conf.Transport,
		Clock:            conf.Clock,
		Rand:             conf.Rand,
		ClientIP:         conf.ClientIP,
	})
	if err != nil {
		return nil, err
	}
	return &Manager{client: c}, nil
}

func resolveCredentials(conf ManagerConfig) (*auth.Credentials, error) {
	if conf.AccessKeyID != "" || conf.AccessKeySecret != "" {
		credentials := auth.New(conf.AccessKeyID, conf.AccessKeySecret)
		return credentials, credentials.Validate()
	}
	provider := conf.CredentialsProvider
	if provider == nil {
		provider = auth.DefaultCredentialsProvider()
	}
	credentials, err := provider.Get(context.Background())
	if err != nil {
		return nil, errors.WithMessage(auth.ErrMissingCredentials, err.Error())
	}
	return credentials, nil
}

// call 发送请求，服务端错误放入 Result.Error，其余情况由 decode 填充 Payload
func call[T any](ctx context.Context, m *Manager, action string, params *client.Params, decode func(*client.Envelope, *T) error) (*Result[T], error) {
	envelope, err := m.client.Call(ctx, action, params)
	if err != nil {
		return nil, err
	}
	result := &Result[T]{RequestID: envelope.RequestID}
	if !envelope.OK() {
		result.Error = envelope.Error
		return result, nil
	}
	if decode != nil {
		if err := decode(envelope, &result.Payload); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// decodeBody 将整个响应体作为 Payload
func decodeBody[T any](envelope *client.Envelope, payload *T) error {
	return envelope.Decode(payload)
}

// decodeRequiredField 将响应体中的 path 字段作为 Payload，字段缺失视为错误
func decodeRequiredField[T any](path string) func(*client.Envelope, *T) error {
	return func(envelope *client.Envelope, payload *T) error {
		found, err := envelope.DecodeField(path, payload)
		if err != nil {
			return err
		}
		if !found {
			return client.ErrInfo(envelope.StatusCode, "missing field "+path+" in response")
		}
		return nil
	}
}
