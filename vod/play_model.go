package vod

// GetVideoPlayAuthRequest 获取视频播放凭证请求参数
type GetVideoPlayAuthRequest struct {

	// VideoID 视频 ID
	VideoID string `validate:"required"`

	// AuthInfoTimeout 播放凭证有效期，单位：秒，取值范围 100~3000，留空即使用服务端默认值
	AuthInfoTimeout int64 `validate:"omitempty,gte=100,lte=3000"`
}

// GetVideoPlayAuthResponse 获取视频播放凭证返回值
type GetVideoPlayAuthResponse struct {

	// RequestID 请求 ID
	RequestID string `json:"RequestId"`

	// PlayAuth 播放凭证，交给播放器使用
	PlayAuth string `json:"PlayAuth"`

	// VideoMeta 视频基础信息
	VideoMeta VideoMeta `json:"VideoMeta"`
}

// VideoMeta 播放凭证中附带的视频基础信息
type VideoMeta struct {
	VideoID  string      `json:"VideoId"`
	Title    string      `json:"Title"`
	Duration float64     `json:"Duration"`
	CoverURL string      `json:"CoverURL"`
	Status   VideoStatus `json:"Status"`
}
