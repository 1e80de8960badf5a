//go:build unit
// +build unit

package vod

import (
	"context"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wangjian/alivod/auth"
	"github.com/wangjian/alivod/client"
	"github.com/wangjian/alivod/internal/vodtest"
)

const (
	testAccessKeyID     = "testid"
	testAccessKeySecret = "testsecret"
)

func newTestManager(t *testing.T, server *vodtest.Server) *Manager {
	manager, err := NewManager(ManagerConfig{
		AccessKeyID:     testAccessKeyID,
		AccessKeySecret: testAccessKeySecret,
		Endpoint:        server.URL,
		Clock:           client.ClockFunc(func() time.Time { return time.Date(2017, 3, 21, 8, 0, 0, 0, time.UTC) }),
		Rand:            rand.NewSource(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	return manager
}

// commonParams 每个请求都会携带的公共参数
var commonParams = []string{
	"Format", "Version", "AccessKeyId", "SignatureMethod", "SignatureVersion",
	"Timestamp", "SignatureNonce", "Action", "Signature",
}

func actionParams(request vodtest.Request) map[string]string {
	params := make(map[string]string)
	for key := range request.Params {
		params[key] = request.Params.Get(key)
	}
	for _, key := range commonParams {
		delete(params, key)
	}
	return params
}

func TestNewManagerUnsupportedSignatureMethod(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()

	manager, err := NewManager(ManagerConfig{
		AccessKeyID:     testAccessKeyID,
		AccessKeySecret: testAccessKeySecret,
		Endpoint:        server.URL,
		SignatureMethod: "HMAC-SHA256",
	})
	ast.Nil(manager)
	ast.ErrorIs(err, auth.ErrUnsupportedSignatureMethod)
	ast.Zero(server.RequestCount())
}

func TestNewManagerUnsupportedHTTPMethod(t *testing.T) {
	ast := assert.New(t)
	_, err := NewManager(ManagerConfig{AccessKeyID: "id", AccessKeySecret: "secret", HTTPMethod: http.MethodDelete})
	ast.ErrorIs(err, client.ErrUnsupportedHTTPMethod)
}

func TestNewManagerCredentials(t *testing.T) {
	ast := assert.New(t)

	_, err := NewManager(ManagerConfig{AccessKeyID: "id"})
	ast.ErrorIs(err, auth.ErrMissingCredentials)

	_, err = NewManager(ManagerConfig{CredentialsProvider: auth.NewChainedCredentialsProvider()})
	ast.ErrorIs(err, auth.ErrMissingCredentials)

	manager, err := NewManager(ManagerConfig{
		CredentialsProvider: &auth.StaticCredentialsProvider{Credentials: auth.New("id", "secret")},
	})
	ast.Nil(err)
	ast.NotNil(manager)
}

func TestNewManagerEndpointFromEnvironment(t *testing.T) {
	ast := assert.New(t)
	t.Setenv("ALIVOD_ENDPOINT", "https://vod.cn-beijing.aliyuncs.com")
	manager, err := NewManager(ManagerConfig{AccessKeyID: "id", AccessKeySecret: "secret"})
	ast.Nil(err)
	ast.Equal("https://vod.cn-beijing.aliyuncs.com", manager.client.Endpoint())

	manager, err = NewManager(ManagerConfig{AccessKeyID: "id", AccessKeySecret: "secret", Endpoint: "http://localhost:8080/"})
	ast.Nil(err)
	ast.Equal("http://localhost:8080", manager.client.Endpoint())
}

func TestManagerPost(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.HandleJSON("RefreshUploadVideo", http.StatusOK, `{"RequestId":"req","VideoId":"v1","UploadAddress":"addr","UploadAuth":"auth"}`)

	manager, err := NewManager(ManagerConfig{
		AccessKeyID:     testAccessKeyID,
		AccessKeySecret: testAccessKeySecret,
		Endpoint:        server.URL,
		HTTPMethod:      HTTPMethodPost,
	})
	ast.Nil(err)
	result, err := manager.RefreshUploadVideo(context.Background(), RefreshUploadVideoRequest{VideoID: "v1"})
	ast.Nil(err)
	ast.True(result.OK())
	ast.Equal(http.MethodPost, server.LastRequest().Method)
}
