package vod

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// CreateUploadVideoRequest 获取视频上传地址和凭证请求参数
type CreateUploadVideoRequest struct {

	// Title 视频标题
	Title string `validate:"required,max=128"`

	// FileName 视频源文件名，必须带扩展名
	FileName string `validate:"required"`

	// FileSize 视频文件大小，单位：字节
	FileSize int64 `validate:"gt=0"`

	// Description 视频描述
	Description string `validate:"max=1024"`

	// CoverURL 自定义视频封面
	CoverURL string `validate:"omitempty,url"`

	// CateID 视频分类 ID
	CateID int64 `validate:"gte=0"`

	// Tags 视频标签，最多 16 个
	Tags []string `validate:"max=16,dive,required"`
}

// CreateUploadVideoResponse 获取视频上传地址和凭证返回值
type CreateUploadVideoResponse struct {

	// RequestID 请求 ID
	RequestID string `json:"RequestId"`

	// VideoID 视频 ID
	VideoID string `json:"VideoId"`

	// UploadAddress 上传地址，base64 编码的 JSON，可以用 DecodeUploadAddress 解析
	UploadAddress string `json:"UploadAddress"`

	// UploadAuth 上传凭证，base64 编码的 JSON，可以用 DecodeUploadAuth 解析
	UploadAuth string `json:"UploadAuth"`
}

// RefreshUploadVideoRequest 刷新视频上传凭证请求参数
type RefreshUploadVideoRequest struct {

	// VideoID 视频 ID
	VideoID string `validate:"required"`
}

// RefreshUploadVideoResponse 刷新视频上传凭证返回值
type RefreshUploadVideoResponse struct {
	RequestID     string `json:"RequestId"`
	VideoID       string `json:"VideoId"`
	UploadAddress string `json:"UploadAddress"`
	UploadAuth    string `json:"UploadAuth"`
}

// CreateUploadImageRequest 获取图片上传地址和凭证请求参数
type CreateUploadImageRequest struct {

	// ImageType 图片类型，cover 或 watermark
	ImageType ImageType `validate:"required,imagetype"`

	// ImageExt 图片扩展名，留空即使用 png
	ImageExt string `validate:"omitempty,oneof=png jpg jpeg gif"`
}

// CreateUploadImageResponse 获取图片上传地址和凭证返回值
type CreateUploadImageResponse struct {
	RequestID     string `json:"RequestId"`
	ImageURL      string `json:"ImageURL"`
	UploadAddress string `json:"UploadAddress"`
	UploadAuth    string `json:"UploadAuth"`
}

// UploadAddress 解码后的上传地址
type UploadAddress struct {
	Endpoint string `json:"Endpoint"`
	Bucket   string `json:"Bucket"`
	FileName string `json:"FileName"`
}

// UploadAuth 解码后的上传凭证，为 STS 临时凭证
type UploadAuth struct {
	SecurityToken   string `json:"SecurityToken"`
	AccessKeyID     string `json:"AccessKeyId"`
	AccessKeySecret string `json:"AccessKeySecret"`
	Expiration      string `json:"Expiration"`
}

// DecodeUploadAddress 解码 UploadAddress
func DecodeUploadAddress(encoded string) (*UploadAddress, error) {
	address := new(UploadAddress)
	if err := decodeBase64JSON(encoded, address); err != nil {
		return nil, err
	}
	return address, nil
}

// DecodeUploadAuth 解码 UploadAuth
func DecodeUploadAuth(encoded string) (*UploadAuth, error) {
	uploadAuth := new(UploadAuth)
	if err := decodeBase64JSON(encoded, uploadAuth); err != nil {
		return nil, err
	}
	return uploadAuth, nil
}

func decodeBase64JSON(encoded string, v interface{}) error {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ErrInfo(http.StatusBadRequest, "invalid base64: "+err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrInfo(http.StatusBadRequest, "invalid json: "+err.Error())
	}
	return nil
}
