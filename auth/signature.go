package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// SignatureMethod 签名算法
type SignatureMethod string

const (
	SignatureMethodHMACSHA1 SignatureMethod = "HMAC-SHA1"

	// SignatureParam 签名结果所在的参数名，不参与签名
	SignatureParam = "Signature"
)

var ErrUnsupportedSignatureMethod = errors.New("unsupported signature method")

// Supported 判断签名算法是否受支持，目前只支持 HMAC-SHA1
func (m SignatureMethod) Supported() bool {
	return m == SignatureMethodHMACSHA1
}

// ValidateSignatureMethod 返回 ErrUnsupportedSignatureMethod 或 nil
func ValidateSignatureMethod(method SignatureMethod) error {
	if !method.Supported() {
		return ErrUnsupportedSignatureMethod
	}
	return nil
}

// PercentEncode 按 RFC 3986 编码，空格为 %20，* 为 %2A，~ 不编码
func PercentEncode(s string) string {
	encoded := url.QueryEscape(s)
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	encoded = strings.ReplaceAll(encoded, "*", "%2A")
	encoded = strings.ReplaceAll(encoded, "%7E", "~")
	return encoded
}

// CanonicalizedQueryString 按参数名字典序排列并编码，Signature 参数被忽略
func CanonicalizedQueryString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == SignatureParam {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(PercentEncode(key))
		builder.WriteByte('=')
		builder.WriteString(PercentEncode(params[key]))
	}
	return builder.String()
}

// StringToSign 生成待签名字符串
// <HTTPMethod>&%2F&<PercentEncode(CanonicalizedQueryString)>
func StringToSign(httpMethod string, params map[string]string) string {
	return strings.ToUpper(httpMethod) + "&" + PercentEncode("/") + "&" + PercentEncode(CanonicalizedQueryString(params))
}

// Sign 使用 <accessKeySecret>& 作为密钥计算签名，结果为 base64 编码
func Sign(method SignatureMethod, accessKeySecret, stringToSign string) (string, error) {
	switch method {
	case SignatureMethodHMACSHA1:
		h := hmac.New(sha1.New, []byte(accessKeySecret+"&"))
		h.Write([]byte(stringToSign))
		return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
	default:
		return "", ErrUnsupportedSignatureMethod
	}
}
