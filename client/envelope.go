package client

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	codeField      = "Code"
	messageField   = "Message"
	requestIDField = "RequestId"
	hostIDField    = "HostId"
	recommendField = "Recommend"
)

// Envelope 解析后的 VOD 响应
// Error 不为 nil 时表示服务端返回了错误，此时不应读取业务数据
type Envelope struct {
	StatusCode int
	Body       []byte
	RequestID  string
	Error      *ServiceError
}

// OK 判断响应是否为成功响应
func (e *Envelope) OK() bool {
	return e.Error == nil
}

// ParseEnvelope 解析响应体，响应体必须是 JSON 对象
// Code 字段存在且不为 null 时视为服务端错误
func ParseEnvelope(statusCode int, body []byte) (*Envelope, error) {
	if !gjson.ValidBytes(body) {
		return nil, decodeError(statusCode, body)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, decodeError(statusCode, body)
	}

	envelope := &Envelope{
		StatusCode: statusCode,
		Body:       body,
		RequestID:  root.Get(requestIDField).String(),
	}
	if code := root.Get(codeField); code.Exists() && code.Type != gjson.Null {
		envelope.Error = &ServiceError{
			StatusCode: statusCode,
			Code:       code.String(),
			Message:    root.Get(messageField).String(),
			RequestID:  envelope.RequestID,
			HostID:     root.Get(hostIDField).String(),
			Recommend:  root.Get(recommendField).String(),
		}
	}
	return envelope, nil
}

// Decode 将整个响应体解析到 v 中
func (e *Envelope) Decode(v interface{}) error {
	if err := json.Unmarshal(e.Body, v); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}

// DecodeField 将 path 指向的字段解析到 v 中，path 语法同 gjson，例如 VideoList.Video
// 字段不存在时返回 false，v 保持不变
func (e *Envelope) DecodeField(path string, v interface{}) (bool, error) {
	field := gjson.GetBytes(e.Body, path)
	if !field.Exists() {
		return false, nil
	}
	if err := json.Unmarshal([]byte(field.Raw), v); err != nil {
		return true, errors.Wrapf(err, "decode response field %s", path)
	}
	return true, nil
}

func decodeError(statusCode int, body []byte) error {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	const maxBody = 512
	text := string(body)
	if len(text) > maxBody {
		text = text[:maxBody] + "..."
	}
	return ErrInfo(statusCode, "invalid response body: "+text)
}
