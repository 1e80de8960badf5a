// Package vodtest 提供一个进程内的 VOD 服务模拟，用于单元测试
// 校验每个请求的签名，并按 Action 参数分发到注册的处理函数
package vodtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/gorilla/mux"

	"github.com/wangjian/alivod/auth"
)

const TestRequestID = "25818875-5F78-4A13-BEF6-D7393642CA58"

// HandlerFunc 处理一个 Action，返回状态码和将被编码为 JSON 的响应体
type HandlerFunc func(params url.Values) (int, interface{})

// Server 模拟的 VOD 服务
type Server struct {
	*httptest.Server

	accessKeyID     string
	accessKeySecret string
	router          *mux.Router

	requestsMutex sync.Mutex
	requests      []Request
}

// Request 服务端收到的请求
type Request struct {
	Method string
	Params url.Values
}

// NewServer 启动模拟服务，调用方负责 Close
func NewServer(accessKeyID, accessKeySecret string) *Server {
	s := &Server{
		accessKeyID:     accessKeyID,
		accessKeySecret: accessKeySecret,
		router:          mux.NewRouter(),
	}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorBody("InvalidAction.NotFound", "Specified api is not found, please check your url and method."))
	})
	// 签名校验先于路由，未注册的 Action 同样会被校验
	s.Server = httptest.NewServer(s.verify(s.router))
	return s
}

// Handle 注册 Action 的处理函数
func (s *Server) Handle(action string, handler HandlerFunc) {
	s.router.Path("/").MatcherFunc(actionMatcher(action)).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, body := handler(r.Form)
		writeJSON(w, status, body)
	})
}

// HandleJSON 注册一个固定返回 body 的 Action
func (s *Server) HandleJSON(action string, status int, body string) {
	s.router.Path("/").MatcherFunc(actionMatcher(action)).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Requests 返回收到的全部请求
func (s *Server) Requests() []Request {
	s.requestsMutex.Lock()
	defer s.requestsMutex.Unlock()
	requests := make([]Request, len(s.requests))
	copy(requests, s.requests)
	return requests
}

// RequestCount 收到的请求数
func (s *Server) RequestCount() int {
	s.requestsMutex.Lock()
	defer s.requestsMutex.Unlock()
	return len(s.requests)
}

// LastRequest 最近一次收到的请求，没有请求时返回零值
func (s *Server) LastRequest() Request {
	s.requestsMutex.Lock()
	defer s.requestsMutex.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// ErrorBody 构建错误响应体
func ErrorBody(code, message string) map[string]string {
	return map[string]string{
		"Code":      code,
		"Message":   message,
		"RequestId": TestRequestID,
		"HostId":    "vod.cn-shanghai.aliyuncs.com",
	}
}

func (s *Server) verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		params := make(map[string]string, len(r.Form))
		for key := range r.Form {
			params[key] = r.Form.Get(key)
		}
		if params["AccessKeyId"] != s.accessKeyID {
			writeJSON(w, http.StatusNotFound, ErrorBody("InvalidAccessKeyId.NotFound", "Specified access key is not found."))
			return
		}
		expected, err := auth.Sign(auth.SignatureMethod(params["SignatureMethod"]), s.accessKeySecret, auth.StringToSign(r.Method, params))
		if err != nil || expected != params[auth.SignatureParam] {
			writeJSON(w, http.StatusBadRequest, ErrorBody("SignatureDoesNotMatch", "Specified signature is not matched with our calculation."))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) record(r *http.Request) {
	if r.Form == nil {
		_ = r.ParseForm()
	}
	params := make(url.Values, len(r.Form))
	for key, values := range r.Form {
		params[key] = append([]string(nil), values...)
	}
	s.requestsMutex.Lock()
	s.requests = append(s.requests, Request{Method: r.Method, Params: params})
	s.requestsMutex.Unlock()
}

func actionMatcher(action string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		if err := r.ParseForm(); err != nil {
			return false
		}
		return r.Form.Get("Action") == action
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
