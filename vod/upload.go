package vod

import (
	"context"

	"github.com/wangjian/alivod/client"
)

// DefaultImageExt 默认图片扩展名
const DefaultImageExt = "png"

// CreateUploadVideo 获取视频上传地址和凭证
// Action=CreateUploadVideo
func (m *Manager) CreateUploadVideo(ctx context.Context, req CreateUploadVideoRequest) (*Result[CreateUploadVideoResponse], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().
		Set("Title", req.Title).
		Set("FileName", req.FileName).
		SetIfNotZero("FileSize", req.FileSize).
		Set("Description", req.Description).
		SetIfNotZero("CoverURL", req.CoverURL).
		SetIfNotZero("CateId", req.CateID).
		SetIfNotZero("Tags", req.Tags)
	return call(ctx, m, "CreateUploadVideo", params, decodeBody[CreateUploadVideoResponse])
}

// RefreshUploadVideo 刷新视频上传凭证
// Action=RefreshUploadVideo
func (m *Manager) RefreshUploadVideo(ctx context.Context, req RefreshUploadVideoRequest) (*Result[RefreshUploadVideoResponse], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().Set("VideoId", req.VideoID)
	return call(ctx, m, "RefreshUploadVideo", params, decodeBody[RefreshUploadVideoResponse])
}

// CreateUploadImage 获取图片上传地址和凭证
// Action=CreateUploadImage
func (m *Manager) CreateUploadImage(ctx context.Context, req CreateUploadImageRequest) (*Result[CreateUploadImageResponse], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	if req.ImageExt == "" {
		req.ImageExt = DefaultImageExt
	}
	params := client.NewParams().
		Set("ImageType", req.ImageType.String()).
		Set("ImageExt", req.ImageExt)
	return call(ctx, m, "CreateUploadImage", params, decodeBody[CreateUploadImageResponse])
}
