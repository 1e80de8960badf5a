//go:build unit
// +build unit

package vod

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wangjian/alivod/internal/vodtest"
)

func encodeJSON(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestManager_CreateUploadVideo(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()

	address := encodeJSON(`{"Endpoint":"https://oss-cn-shanghai.aliyuncs.com","Bucket":"in-201703232118266-5sejdln9o","FileName":"sv/5ae3e3b7/5ae3e3b7.mp4"}`)
	uploadAuth := encodeJSON(`{"SecurityToken":"token","AccessKeyId":"STS.id","AccessKeySecret":"sts-secret","Expiration":"3600"}`)
	server.Handle("CreateUploadVideo", func(params url.Values) (int, interface{}) {
		return http.StatusOK, map[string]string{
			"RequestId":     "req-1",
			"VideoId":       "93ab850b4f6f44eab54b6e91d24d81d4",
			"UploadAddress": address,
			"UploadAuth":    uploadAuth,
		}
	})

	manager := newTestManager(t, server)
	result, err := manager.CreateUploadVideo(context.Background(), CreateUploadVideoRequest{
		Title:       "my video",
		FileName:    "video.mp4",
		FileSize:    1024,
		Description: "",
		CateID:      7,
		Tags:        []string{"a", "b"},
	})
	ast.Nil(err)
	ast.True(result.OK())
	ast.Equal("req-1", result.RequestID)
	ast.Equal("93ab850b4f6f44eab54b6e91d24d81d4", result.Payload.VideoID)

	ast.Equal(map[string]string{
		"Title":       "my video",
		"FileName":    "video.mp4",
		"FileSize":    "1024",
		"Description": "",
		"CateId":      "7",
		"Tags":        "a,b",
	}, actionParams(server.LastRequest()))
	ast.Equal("CreateUploadVideo", server.LastRequest().Params.Get("Action"))

	decodedAddress, err := DecodeUploadAddress(result.Payload.UploadAddress)
	ast.Nil(err)
	ast.Equal("in-201703232118266-5sejdln9o", decodedAddress.Bucket)
	decodedAuth, err := DecodeUploadAuth(result.Payload.UploadAuth)
	ast.Nil(err)
	ast.Equal("STS.id", decodedAuth.AccessKeyID)
	ast.Equal("token", decodedAuth.SecurityToken)
}

func TestManager_CreateUploadVideoInvalid(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	manager := newTestManager(t, server)

	_, err := manager.CreateUploadVideo(context.Background(), CreateUploadVideoRequest{Title: "t", FileName: "f.mp4"})
	ast.NotNil(err)
	_, err = manager.CreateUploadVideo(context.Background(), CreateUploadVideoRequest{FileName: "f.mp4", FileSize: 1})
	ast.NotNil(err)
	_, err = manager.CreateUploadVideo(context.Background(), CreateUploadVideoRequest{Title: "t", FileName: "f.mp4", FileSize: 1, CoverURL: "not a url"})
	ast.NotNil(err)
	ast.Zero(server.RequestCount())
}

func TestManager_CreateUploadVideoServiceError(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.Handle("CreateUploadVideo", func(url.Values) (int, interface{}) {
		return http.StatusForbidden, vodtest.ErrorBody("Forbidden.IllegalStatus", "Status of the video is illegal.")
	})

	result, err := newTestManager(t, server).CreateUploadVideo(context.Background(), CreateUploadVideoRequest{Title: "t", FileName: "f.mp4", FileSize: 1})
	ast.Nil(err)
	ast.False(result.OK())
	ast.Equal("Forbidden.IllegalStatus", result.Error.Code)
	ast.Equal("Status of the video is illegal.", result.Error.Message)
	ast.Equal(vodtest.TestRequestID, result.RequestID)
	ast.Empty(result.Payload.VideoID)

	_, err = result.Unwrap()
	ast.Equal(result.Error, err)
}

func TestManager_RefreshUploadVideo(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.HandleJSON("RefreshUploadVideo", http.StatusOK, `{"RequestId":"req-2","VideoId":"v1","UploadAddress":"addr","UploadAuth":"auth"}`)

	manager := newTestManager(t, server)
	result, err := manager.RefreshUploadVideo(context.Background(), RefreshUploadVideoRequest{VideoID: "v1"})
	ast.Nil(err)
	payload, err := result.Unwrap()
	ast.Nil(err)
	ast.Equal("auth", payload.UploadAuth)
	ast.Equal(map[string]string{"VideoId": "v1"}, actionParams(server.LastRequest()))

	_, err = manager.RefreshUploadVideo(context.Background(), RefreshUploadVideoRequest{})
	ast.NotNil(err)
	ast.Equal(1, server.RequestCount())
}

func TestManager_CreateUploadImage(t *testing.T) {
	ast := assert.New(t)
	server := vodtest.NewServer(testAccessKeyID, testAccessKeySecret)
	defer server.Close()
	server.HandleJSON("CreateUploadImage", http.StatusOK, `{"RequestId":"req-3","ImageURL":"https://example.com/image/default/cover.png","UploadAddress":"addr","UploadAuth":"auth"}`)

	manager := newTestManager(t, server)
	result, err := manager.CreateUploadImage(context.Background(), CreateUploadImageRequest{ImageType: ImageTypeCover})
	ast.Nil(err)
	ast.True(result.OK())
	ast.Equal("https://example.com/image/default/cover.png", result.Payload.ImageURL)
	ast.Equal(map[string]string{"ImageType": "cover", "ImageExt": "png"}, actionParams(server.LastRequest()))

	_, err = manager.CreateUploadImage(context.Background(), CreateUploadImageRequest{ImageType: ImageTypeWatermark, ImageExt: "jpg"})
	ast.Nil(err)
	ast.Equal(map[string]string{"ImageType": "watermark", "ImageExt": "jpg"}, actionParams(server.LastRequest()))

	_, err = manager.CreateUploadImage(context.Background(), CreateUploadImageRequest{ImageType: "logo"})
	ast.NotNil(err)
	ast.Equal(2, server.RequestCount())
}

func TestDecodeUploadAddressInvalid(t *testing.T) {
	ast := assert.New(t)
	_, err := DecodeUploadAddress("%%%")
	ast.NotNil(err)
	_, err = DecodeUploadAuth(encodeJSON("not json"))
	ast.NotNil(err)
}
