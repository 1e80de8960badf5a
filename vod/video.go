package vod

import (
	"context"
	"strings"

	"github.com/wangjian/alivod/client"
)

// GetVideoInfo 获取视频信息
// Action=GetVideoInfo，返回响应中的 Video 字段
func (m *Manager) GetVideoInfo(ctx context.Context, req GetVideoInfoRequest) (*Result[Video], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().Set("VideoId", req.VideoID)
	return call(ctx, m, "GetVideoInfo", params, decodeRequiredField[Video]("Video"))
}

// UpdateVideoInfo 修改视频信息
// Action=UpdateVideoInfo
func (m *Manager) UpdateVideoInfo(ctx context.Context, req UpdateVideoInfoRequest) (*Result[Empty], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().
		Set("VideoId", req.VideoID).
		SetIfNotNil("Title", req.Title).
		SetIfNotNil("Description", req.Description).
		SetIfNotNil("CoverURL", req.CoverURL).
		SetIfNotZero("CateId", req.CateID).
		SetIfNotZero("Tags", req.Tags)
	return call[Empty](ctx, m, "UpdateVideoInfo", params, nil)
}

// DeleteVideo 删除视频，支持批量
// Action=DeleteVideo
func (m *Manager) DeleteVideo(ctx context.Context, req DeleteVideoRequest) (*Result[Empty], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().Set("VideoIds", strings.Join(req.VideoIDs, ","))
	return call[Empty](ctx, m, "DeleteVideo", params, nil)
}

// GetVideoList 获取视频列表
// Action=GetVideoList，返回响应中的 VideoList.Video 字段与 Total
func (m *Manager) GetVideoList(ctx context.Context, req GetVideoListRequest) (*Result[VideoList], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().
		SetIfNotZero("Status", req.Status.String()).
		SetIfNotZero("CateId", req.CateID).
		SetIfNotZero("PageNo", req.PageNo).
		SetIfNotZero("PageSize", req.PageSize).
		SetIfNotZero("SortBy", req.SortBy.String())
	return call(ctx, m, "GetVideoList", params, decodeVideoList)
}

func decodeVideoList(envelope *client.Envelope, list *VideoList) error {
	var total struct {
		Total int64 `json:"Total"`
	}
	if err := envelope.Decode(&total); err != nil {
		return err
	}
	list.Total = total.Total
	if _, err := envelope.DecodeField("VideoList.Video", &list.Videos); err != nil {
		return err
	}
	if list.Videos == nil {
		list.Videos = []Video{}
	}
	return nil
}
