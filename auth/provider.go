package auth

import (
	"context"
	"errors"

	"github.com/wangjian/alivod/internal/configfile"
	"github.com/wangjian/alivod/internal/env"
)

// CredentialsProvider 获取 Credentials 对象的接口
type CredentialsProvider interface {
	Get(context.Context) (*Credentials, error)
}

// StaticCredentialsProvider 总是返回同一个 Credentials
type StaticCredentialsProvider struct {
	Credentials *Credentials
}

func (provider *StaticCredentialsProvider) Get(context.Context) (*Credentials, error) {
	if err := provider.Credentials.Validate(); err != nil {
		return nil, err
	}
	return provider.Credentials, nil
}

// EnvironmentVariableCredentialsProvider 从环境变量 ALIBABA_CLOUD_ACCESS_KEY_ID / ALIBABA_CLOUD_ACCESS_KEY_SECRET 中获取 Credentials
type EnvironmentVariableCredentialsProvider struct{}

func (provider *EnvironmentVariableCredentialsProvider) Get(context.Context) (*Credentials, error) {
	accessKeyID, accessKeySecret := env.CredentialsFromEnvironment()
	if accessKeyID == "" || accessKeySecret == "" {
		return nil, errors.New("ALIBABA_CLOUD_ACCESS_KEY_ID or ALIBABA_CLOUD_ACCESS_KEY_SECRET is not set")
	}
	return New(accessKeyID, accessKeySecret), nil
}

// ConfigFileCredentialsProvider 从 TOML 配置文件的当前 profile 中获取 Credentials
type ConfigFileCredentialsProvider struct{}

func (provider *ConfigFileCredentialsProvider) Get(context.Context) (*Credentials, error) {
	accessKeyID, accessKeySecret, err := configfile.CredentialsFromConfigFile()
	if err != nil {
		return nil, err
	}
	if accessKeyID == "" || accessKeySecret == "" {
		return nil, errors.New("credentials are not configured in config file")
	}
	return New(accessKeyID, accessKeySecret), nil
}

// ChainedCredentialsProvider 存储多个 CredentialsProvider，逐个尝试直到成功获取第一个 Credentials 为止
type ChainedCredentialsProvider struct {
	providers []CredentialsProvider
}

// NewChainedCredentialsProvider 构建一个 ChainedCredentialsProvider
func NewChainedCredentialsProvider(providers ...CredentialsProvider) *ChainedCredentialsProvider {
	return &ChainedCredentialsProvider{providers: providers}
}

func (provider *ChainedCredentialsProvider) Get(ctx context.Context) (credentials *Credentials, err error) {
	err = ErrMissingCredentials
	for _, p := range provider.providers {
		if credentials, err = p.Get(ctx); err == nil {
			return
		}
	}
	return nil, err
}

// DefaultCredentialsProvider 先读环境变量，再读配置文件
func DefaultCredentialsProvider() CredentialsProvider {
	return NewChainedCredentialsProvider(
		&EnvironmentVariableCredentialsProvider{},
		&ConfigFileCredentialsProvider{},
	)
}

var (
	_ CredentialsProvider = (*StaticCredentialsProvider)(nil)
	_ CredentialsProvider = (*EnvironmentVariableCredentialsProvider)(nil)
	_ CredentialsProvider = (*ConfigFileCredentialsProvider)(nil)
	_ CredentialsProvider = (*ChainedCredentialsProvider)(nil)
)
