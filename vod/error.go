package vod

import (
	"net/http"

	"github.com/wangjian/alivod/client"
)

var (
	ErrInvalidArgs = client.ErrInvalidArgs
)

// ServiceError VOD 服务返回的错误码与错误信息
type ServiceError = client.ServiceError

func ErrInfo(code int, err string) *client.ErrorInfo {
	if code == 0 {
		code = http.StatusBadRequest
	}
	return client.ErrInfo(code, err)
}
