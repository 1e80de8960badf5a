package main

import (
	"os"
	"path/filepath"

	"github.com/wangjian/alivod/vod"
)

type uploadCredentials struct {
	Address *vod.UploadAddress `json:"UploadAddress"`
	Auth    *vod.UploadAuth    `json:"UploadAuth"`
	ETag    string             `json:"ETag,omitempty"`
}

func decodeUploadCredentials(address, auth string) (*uploadCredentials, error) {
	decodedAddress, err := vod.DecodeUploadAddress(address)
	if err != nil {
		return nil, err
	}
	decodedAuth, err := vod.DecodeUploadAuth(auth)
	if err != nil {
		return nil, err
	}
	return &uploadCredentials{Address: decodedAddress, Auth: decodedAuth}, nil
}

type createUploadVideoCommand struct {
	app *app

	Title       string   `long:"title" required:"true" description:"视频标题"`
	File        string   `short:"f" long:"file" description:"本地视频文件，指定后获取凭证并上传到 OSS"`
	FileName    string   `long:"file-name" description:"视频源文件名，必须带扩展名，指定 --file 时默认为其文件名"`
	FileSize    int64    `long:"file-size" description:"视频文件大小，单位：字节，指定 --file 时默认为其大小"`
	Description string   `long:"description" description:"视频描述"`
	CoverURL    string   `long:"cover-url" description:"自定义视频封面"`
	CateID      int64    `long:"cate-id" description:"视频分类 ID"`
	Tags        []string `long:"tag" description:"视频标签，可以多次指定"`
	Decode      bool     `long:"decode" description:"同时输出解码后的上传地址和凭证"`
}

func (c *createUploadVideoCommand) Execute([]string) error {
	var file *os.File
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		if c.FileName == "" {
			c.FileName = filepath.Base(c.File)
		}
		if c.FileSize == 0 {
			c.FileSize = info.Size()
		}
		file = f
	}
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.CreateUploadVideo(c.app.ctx, vod.CreateUploadVideoRequest{
		Title:       c.Title,
		FileName:    c.FileName,
		FileSize:    c.FileSize,
		Description: c.Description,
		CoverURL:    c.CoverURL,
		CateID:      c.CateID,
		Tags:        c.Tags,
	})
	if err != nil {
		return err
	}
	o := newOutput(result)
	if (c.Decode || file != nil) && result.OK() {
		decoded, err := decodeUploadCredentials(result.Payload.UploadAddress, result.Payload.UploadAuth)
		if err != nil {
			return err
		}
		if file != nil {
			if decoded.ETag, err = vod.UploadMedia(c.app.ctx, decoded.Address, decoded.Auth, file, &vod.UploadOptions{UsePathStyle: c.app.Options.PathStyle}); err != nil {
				return err
			}
		}
		o.Decoded = decoded
	}
	return c.app.print(o)
}

type refreshUploadVideoCommand struct {
	app *app

	Args struct {
		VideoID string `positional-arg-name:"VIDEO_ID"`
	} `positional-args:"yes" required:"yes"`
	Decode bool `long:"decode" description:"同时输出解码后的上传地址和凭证"`
}

func (c *refreshUploadVideoCommand) Execute([]string) error {
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.RefreshUploadVideo(c.app.ctx, vod.RefreshUploadVideoRequest{VideoID: c.Args.VideoID})
	if err != nil {
		return err
	}
	o := newOutput(result)
	if c.Decode && result.OK() {
		if o.Decoded, err = decodeUploadCredentials(result.Payload.UploadAddress, result.Payload.UploadAuth); err != nil {
			return err
		}
	}
	return c.app.print(o)
}

type createUploadImageCommand struct {
	app *app

	ImageType string `long:"type" required:"true" description:"图片类型，cover 或 watermark"`
	ImageExt  string `long:"ext" description:"图片扩展名，留空即使用 png"`
}

func (c *createUploadImageCommand) Execute([]string) error {
	imageType, err := vod.ParseImageType(c.ImageType)
	if err != nil {
		return err
	}
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.CreateUploadImage(c.app.ctx, vod.CreateUploadImageRequest{ImageType: imageType, ImageExt: c.ImageExt})
	if err != nil {
		return err
	}
	return c.app.print(newOutput(result))
}

type getVideoInfoCommand struct {
	app *app

	Concurrency int `short:"c" long:"concurrency" default:"4" description:"同时发出的请求数"`
	Args        struct {
		VideoIDs []string `positional-arg-name:"VIDEO_ID" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *getVideoInfoCommand) Execute([]string) error {
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	results, err := manager.GetVideoInfos(c.app.ctx, c.Args.VideoIDs, c.Concurrency)
	if err != nil {
		return err
	}
	outputs := make([]*output, len(results))
	for i, result := range results {
		outputs[i] = newOutput(result)
	}
	return c.app.print(outputs...)
}

type updateVideoInfoCommand struct {
	app *app

	Args struct {
		VideoID string `positional-arg-name:"VIDEO_ID"`
	} `positional-args:"yes" required:"yes"`
	Title       *string  `long:"title" description:"视频标题，传入空字符串即清空"`
	Description *string  `long:"description" description:"视频描述，传入空字符串即清空"`
	CoverURL    *string  `long:"cover-url" description:"视频封面，传入空字符串即清空"`
	CateID      int64    `long:"cate-id" description:"视频分类 ID"`
	Tags        []string `long:"tag" description:"视频标签，可以多次指定"`
}

func (c *updateVideoInfoCommand) Execute([]string) error {
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.UpdateVideoInfo(c.app.ctx, vod.UpdateVideoInfoRequest{
		VideoID:     c.Args.VideoID,
		Title:       c.Title,
		Description: c.Description,
		CoverURL:    c.CoverURL,
		CateID:      c.CateID,
		Tags:        c.Tags,
	})
	if err != nil {
		return err
	}
	return c.app.print(newOutput(result))
}

type deleteVideoCommand struct {
	app *app

	Args struct {
		VideoIDs []string `positional-arg-name:"VIDEO_ID" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *deleteVideoCommand) Execute([]string) error {
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.DeleteVideo(c.app.ctx, vod.DeleteVideoRequest{VideoIDs: c.Args.VideoIDs})
	if err != nil {
		return err
	}
	return c.app.print(newOutput(result))
}

type getVideoListCommand struct {
	app *app

	Status   string `long:"status" description:"视频状态，例如 Normal"`
	CateID   int64  `long:"cate-id" description:"视频分类 ID"`
	PageNo   int    `long:"page-no" description:"页码，从 1 开始"`
	PageSize int    `long:"page-size" description:"分页大小，最大 100"`
	SortBy   string `long:"sort-by" description:"排序方式，asc 或 desc"`
}

func (c *getVideoListCommand) Execute([]string) error {
	req := vod.GetVideoListRequest{CateID: c.CateID, PageNo: c.PageNo, PageSize: c.PageSize}
	var err error
	if c.Status != "" {
		if req.Status, err = vod.ParseVideoStatus(c.Status); err != nil {
			return err
		}
	}
	if c.SortBy != "" {
		if req.SortBy, err = vod.ParseSortBy(c.SortBy); err != nil {
			return err
		}
	}
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.GetVideoList(c.app.ctx, req)
	if err != nil {
		return err
	}
	return c.app.print(newOutput(result))
}

type getVideoPlayAuthCommand struct {
	app *app

	Args struct {
		VideoID string `positional-arg-name:"VIDEO_ID"`
	} `positional-args:"yes" required:"yes"`
	AuthInfoTimeout int64 `long:"auth-timeout" description:"播放凭证有效期，单位：秒"`
}

func (c *getVideoPlayAuthCommand) Execute([]string) error {
	manager, err := c.app.manager()
	if err != nil {
		return err
	}
	result, err := manager.GetVideoPlayAuth(c.app.ctx, vod.GetVideoPlayAuthRequest{VideoID: c.Args.VideoID, AuthInfoTimeout: c.AuthInfoTimeout})
	if err != nil {
		return err
	}
	return c.app.print(newOutput(result))
}
