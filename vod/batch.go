package vod

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency GetVideoInfos 默认并发数
const DefaultBatchConcurrency = 4

// GetVideoInfos 并发获取多个视频的信息，返回结果与 videoIDs 一一对应
// 任一请求出现非服务端错误时整体返回该错误；服务端错误保留在对应的 Result 中
func (m *Manager) GetVideoInfos(ctx context.Context, videoIDs []string, concurrency int) ([]*Result[Video], error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	results := make([]*Result[Video], len(videoIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, videoID := range videoIDs {
		i, videoID := i, videoID
		g.Go(func() error {
			result, err := m.GetVideoInfo(ctx, GetVideoInfoRequest{VideoID: videoID})
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
