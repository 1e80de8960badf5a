package client

import (
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	nonceRandomLength = 32
	nonceAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Clock 时间来源
type Clock interface {
	Now() time.Time
}

// ClockFunc 将函数适配为 Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock 使用系统时间
var SystemClock Clock = ClockFunc(time.Now)

// IPSource 返回客户端 IP，可以为空
type IPSource func() string

// NoClientIP 不附带客户端 IP
func NoClientIP() string {
	return ""
}

// IPFromRequest 从 HTTP 请求中获取客户端 IP
// 优先使用 X-Forwarded-For 中的第一个地址，其次是 RemoteAddr，均不存在时返回空字符串
func IPFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if r.RemoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NonceGenerator 生成 SignatureNonce
// 由时间戳（100 微秒精度）、去掉点号的客户端 IP 和 32 位随机字符组成，不保证唯一
type NonceGenerator struct {
	clock    Clock
	clientIP IPSource

	randMutex sync.Mutex
	rand      *rand.Rand
}

// NewNonceGenerator 构建 NonceGenerator，参数为 nil 时使用默认值
func NewNonceGenerator(clock Clock, source rand.Source, clientIP IPSource) *NonceGenerator {
	if clock == nil {
		clock = SystemClock
	}
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	if clientIP == nil {
		clientIP = NoClientIP
	}
	return &NonceGenerator{
		clock:    clock,
		clientIP: clientIP,
		rand:     rand.New(source),
	}
}

// Nonce 生成一个新的随机串
func (g *NonceGenerator) Nonce() string {
	var builder strings.Builder
	builder.WriteString(strconv.FormatInt(g.clock.Now().UnixNano()/int64(100*time.Microsecond), 10))
	builder.WriteString(strings.ReplaceAll(g.clientIP(), ".", ""))

	g.randMutex.Lock()
	for i := 0; i < nonceRandomLength; i++ {
		builder.WriteByte(nonceAlphabet[g.rand.Intn(len(nonceAlphabet))])
	}
	g.randMutex.Unlock()

	return builder.String()
}
