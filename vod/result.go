package vod

// Result 一次 API 调用的结果
// 服务端返回错误码时 Error 不为 nil，Payload 为零值；否则 Payload 为业务数据
type Result[T any] struct {
	// RequestID 请求 ID，成功或失败均会返回
	RequestID string

	// Payload 成功时的业务数据
	Payload T

	// Error 服务端返回的错误码与错误信息
	Error *ServiceError
}

// OK 判断调用是否成功
func (r *Result[T]) OK() bool {
	return r != nil && r.Error == nil
}

// Unwrap 成功时返回 Payload，失败时返回 Error
func (r *Result[T]) Unwrap() (T, error) {
	if r.Error != nil {
		var zero T
		return zero, r.Error
	}
	return r.Payload, nil
}

// Empty 无业务数据的返回值，用于更新、删除类操作
type Empty struct{}
