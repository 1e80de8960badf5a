package vod

// Video 视频信息
type Video struct {
	VideoID      string      `json:"VideoId"`
	Title        string      `json:"Title"`
	Description  string      `json:"Description"`
	Duration     float64     `json:"Duration"`
	CoverURL     string      `json:"CoverURL"`
	Status       VideoStatus `json:"Status"`
	CreationTime string      `json:"CreationTime"`
	ModifyTime   string      `json:"ModifyTime,omitempty"`
	Size         int64       `json:"Size"`
	Snapshots    Snapshots   `json:"Snapshots"`
	CateID       int64       `json:"CateId"`
	CateName     string      `json:"CateName"`
	Tags         string      `json:"Tags"`
}

// String 返回 s 的指针，便于填写 UpdateVideoInfoRequest 的可选字段
func String(s string) *string {
	return &s
}

// Snapshots 视频截图列表
type Snapshots struct {
	Snapshot []string `json:"Snapshot"`
}

// GetVideoInfoRequest 获取视频信息请求参数
type GetVideoInfoRequest struct {

	// VideoID 视频 ID
	VideoID string `validate:"required"`
}

// UpdateVideoInfoRequest 修改视频信息请求参数
// 除 VideoID 外均为可选。Title、Description、CoverURL 为 nil 时不修改，指向空字符串时清空；
// CateID、Tags 为零值时不会出现在请求中
type UpdateVideoInfoRequest struct {

	// VideoID 视频 ID
	VideoID string `validate:"required"`

	// Title 视频标题
	Title *string `validate:"omitempty,max=128"`

	// Description 视频描述
	Description *string `validate:"omitempty,max=1024"`

	// CoverURL 视频封面
	CoverURL *string `validate:"omitempty,url"`

	// CateID 视频分类 ID
	CateID int64 `validate:"gte=0"`

	// Tags 视频标签，最多 16 个
	Tags []string `validate:"max=16,dive,required"`
}

// MaxDeleteVideoIDs 一次最多删除的视频数
const MaxDeleteVideoIDs = 20

// DeleteVideoRequest 删除视频请求参数
type DeleteVideoRequest struct {

	// VideoIDs 视频 ID 列表，最多 20 个
	VideoIDs []string `validate:"required,min=1,max=20,dive,required"`
}

// GetVideoListRequest 获取视频列表请求参数
// 除分页参数外均为可选
type GetVideoListRequest struct {

	// Status 视频状态
	Status VideoStatus `validate:"omitempty,videostatus"`

	// CateID 视频分类 ID
	CateID int64 `validate:"gte=0"`

	// PageNo 页码，从 1 开始
	PageNo int `validate:"gte=0"`

	// PageSize 分页大小，最大 100
	PageSize int `validate:"gte=0,lte=100"`

	// SortBy 排序方式
	SortBy SortBy `validate:"omitempty,sortby"`
}

// VideoList 视频列表
type VideoList struct {

	// Total 视频总数
	Total int64 `json:"Total"`

	// Videos 当前页的视频
	Videos []Video `json:"Videos"`
}
