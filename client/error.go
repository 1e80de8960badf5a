package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrUnsupportedHTTPMethod = errors.New("unsupported http method")
	ErrInvalidArgs           = &ErrorInfo{Code: http.StatusBadRequest, Err: "invalid args"}
)

// ErrorInfo SDK 本地产生的错误，或服务端返回了无法识别的错误响应
type ErrorInfo struct {
	Code int    `json:"code"`
	Err  string `json:"error"`
}

func (r *ErrorInfo) Error() string {
	return r.Err
}

func (r *ErrorInfo) HttpCode() int {
	return r.Code
}

// ErrInfo 构建一个 ErrorInfo
func ErrInfo(code int, err string) *ErrorInfo {
	return &ErrorInfo{
		Code: code,
		Err:  err,
	}
}

// ServiceError VOD 服务返回的错误
// 响应体中存在 Code 字段即视为错误
type ServiceError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"Code"`
	Message    string `json:"Message"`
	RequestID  string `json:"RequestId"`
	HostID     string `json:"HostId,omitempty"`
	Recommend  string `json:"Recommend,omitempty"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s (RequestId: %s)", e.Code, e.Message, e.RequestID)
}
