package vod

import (
	"net/http"
	"strings"
)

// VideoStatus 视频状态
type VideoStatus string

const (
	StatusUploading     VideoStatus = "Uploading"
	StatusUploadFail    VideoStatus = "UploadFail"
	StatusUploadSucc    VideoStatus = "UploadSucc"
	StatusTranscoding   VideoStatus = "Transcoding"
	StatusTranscodeFail VideoStatus = "TranscodeFail"
	StatusBlocked       VideoStatus = "Blocked"
	StatusNormal        VideoStatus = "Normal"
)

// VideoStatuses 全部视频状态
var VideoStatuses = []VideoStatus{
	StatusUploading,
	StatusUploadFail,
	StatusUploadSucc,
	StatusTranscoding,
	StatusTranscodeFail,
	StatusBlocked,
	StatusNormal,
}

func (s VideoStatus) Valid() bool {
	for _, status := range VideoStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s VideoStatus) String() string {
	return string(s)
}

// ParseVideoStatus 不区分大小写地解析视频状态
func ParseVideoStatus(s string) (VideoStatus, error) {
	for _, status := range VideoStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", ErrInfo(http.StatusBadRequest, "invalid video status: "+s)
}

// SortBy 视频列表排序方式
type SortBy string

const (
	SortByCreationTimeAsc  SortBy = "CreationTime:Asc"
	SortByCreationTimeDesc SortBy = "CreationTime:Desc"
)

func (s SortBy) Valid() bool {
	return s == SortByCreationTimeAsc || s == SortByCreationTimeDesc
}

func (s SortBy) String() string {
	return string(s)
}

// ParseSortBy 解析排序方式，除完整取值外也接受 asc / desc
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(s) {
	case "asc", strings.ToLower(string(SortByCreationTimeAsc)):
		return SortByCreationTimeAsc, nil
	case "desc", strings.ToLower(string(SortByCreationTimeDesc)):
		return SortByCreationTimeDesc, nil
	}
	return "", ErrInfo(http.StatusBadRequest, "invalid sort by: "+s)
}

// ImageType 图片类型
type ImageType string

const (
	ImageTypeCover     ImageType = "cover"
	ImageTypeWatermark ImageType = "watermark"
)

func (t ImageType) Valid() bool {
	return t == ImageTypeCover || t == ImageTypeWatermark
}

func (t ImageType) String() string {
	return string(t)
}

// ParseImageType 不区分大小写地解析图片类型
func ParseImageType(s string) (ImageType, error) {
	switch ImageType(strings.ToLower(s)) {
	case ImageTypeCover:
		return ImageTypeCover, nil
	case ImageTypeWatermark:
		return ImageTypeWatermark, nil
	}
	return "", ErrInfo(http.StatusBadRequest, "invalid image type: "+s)
}
