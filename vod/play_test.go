//go:build unit
// +build unit

package vod

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wangjian/alivod/internal/vodtest"
)

func TestManager_GetVideoPlayAuth(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.HandleJSON("GetVideoPlayAuth", http.StatusOK, `{
		"RequestId": "req-play",
		"PlayAuth": "play-auth-token",
		"VideoMeta": {"VideoId": "v1", "Title": "title", "Duration": 12.5, "CoverURL": "https://example.com/c.jpg", "Status": "Normal"}
	}`)

	manager := newTestManager(t, server)
	result, err := manager.GetVideoPlayAuth(context.Background(), GetVideoPlayAuthRequest{VideoID: "v1"})
	ast.Nil(err)
	ast.True(result.OK())
	ast.Equal("play-auth-token", result.Payload.PlayAuth)
	ast.Equal(VideoMeta{VideoID: "v1", Title: "title", Duration: 12.5, CoverURL: "https://example.com/c.jpg", Status: StatusNormal}, result.Payload.VideoMeta)
	ast.Equal(map[string]string{"VideoId": "v1"}, actionParams(server.LastRequest()))

	_, err = manager.GetVideoPlayAuth(context.Background(), GetVideoPlayAuthRequest{VideoID: "v1", AuthInfoTimeout: 1800})
	ast.Nil(err)
	ast.Equal(map[string]string{"VideoId": "v1", "AuthInfoTimeout": "1800"}, actionParams(server.LastRequest()))

	_, err = manager.GetVideoPlayAuth(context.Background(), GetVideoPlayAuthRequest{VideoID: "v1", AuthInfoTimeout: 10})
	ast.NotNil(err)
	ast.Equal(2, server.RequestCount())
}

func TestManager_GetVideoPlayAuthServiceError(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.HandleJSON("GetVideoPlayAuth", http.StatusForbidden, `{"RequestId":"req","Code":"Forbidden.IllegalStatus","Message":"Status of the video is illegal."}`)

	result, err := newTestManager(t, server).GetVideoPlayAuth(context.Background(), GetVideoPlayAuthRequest{VideoID: "v1"})
	ast.Nil(err)
	ast.False(result.OK())
	ast.Empty(result.Payload.PlayAuth)
	ast.Equal("Forbidden.IllegalStatus", result.Error.Code)
}
