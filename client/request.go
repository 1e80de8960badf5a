package client

import (
	"github.com/wangjian/alivod/auth"
)

const (
	ParamAction           = "Action"
	ParamFormat           = "Format"
	ParamVersion          = "Version"
	ParamAccessKeyID      = "AccessKeyId"
	ParamSignatureMethod  = "SignatureMethod"
	ParamSignatureVersion = "SignatureVersion"
	ParamSignatureNonce   = "SignatureNonce"
	ParamTimestamp        = "Timestamp"
)

// Request 一次 API 调用的请求，每次调用单独构建，发送后丢弃
type Request struct {
	Action string
	Method string
	Params *Params
}

// Signed 判断请求是否已经签名
func (r *Request) Signed() bool {
	return r.Params.Has(auth.SignatureParam)
}
