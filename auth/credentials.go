package auth

import "errors"

var ErrMissingCredentials = errors.New("access key id or access key secret is empty")

// Credentials 阿里云鉴权类，用于生成 RPC 请求签名
//
// AccessKey 可以从 https://ram.console.aliyun.com/manage/ak 获取
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
}

// New 构建一个 Credentials 对象
func New(accessKeyID, accessKeySecret string) *Credentials {
	return &Credentials{
		AccessKeyID:     accessKeyID,
		AccessKeySecret: accessKeySecret,
	}
}

// Validate 检查 AccessKey 是否完整
func (c *Credentials) Validate() error {
	if c == nil || c.AccessKeyID == "" || c.AccessKeySecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Sign 对请求参数签名，返回 Signature 参数的值
func (c *Credentials) Sign(method SignatureMethod, httpMethod string, params map[string]string) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return Sign(method, c.AccessKeySecret, StringToSign(httpMethod, params))
}
