package vod

import (
	"context"

	"github.com/wangjian/alivod/client"
)

// GetVideoPlayAuth 获取视频播放凭证
// Action=GetVideoPlayAuth
func (m *Manager) GetVideoPlayAuth(ctx context.Context, req GetVideoPlayAuthRequest) (*Result[GetVideoPlayAuthResponse], error) {
	if err := defaultValidator.Validate(req); err != nil {
		return nil, err
	}
	params := client.NewParams().
		Set("VideoId", req.VideoID).
		SetIfNotZero("AuthInfoTimeout", req.AuthInfoTimeout)
	return call(ctx, m, "GetVideoPlayAuth", params, decodeBody[GetVideoPlayAuthResponse])
}
