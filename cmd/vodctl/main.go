// Command vodctl 在命令行中调用阿里云视频点播 VOD API
//
// 密钥依次读取 --access-key-id / --access-key-secret、环境变量
// ALIBABA_CLOUD_ACCESS_KEY_ID / ALIBABA_CLOUD_ACCESS_KEY_SECRET 和配置文件 ~/.alivod/config.toml。
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap/zapcore"

	"github.com/wangjian/alivod/client"
	"github.com/wangjian/alivod/internal/log"
	"github.com/wangjian/alivod/vod"
)

const (
	exitOK           = 0
	exitError        = 1
	exitServiceError = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type globalOptions struct {
	AccessKeyID     string        `short:"i" long:"access-key-id" description:"访问密钥 ID"`
	AccessKeySecret string        `short:"k" long:"access-key-secret" description:"访问密钥"`
	Endpoint        string        `short:"e" long:"endpoint" description:"API 地址，留空即使用环境变量、配置文件或默认地址"`
	Method          string        `short:"X" long:"method" default:"GET" choice:"GET" choice:"POST" description:"请求方式"`
	Timeout         time.Duration `long:"timeout" description:"请求超时时间，例如 10s"`
	Output          string        `short:"o" long:"output" default:"json" choice:"json" choice:"yaml" description:"输出格式"`
	PathStyle       bool          `long:"oss-path-style" description:"以 path style 访问 OSS Bucket"`
	Debug           bool          `long:"debug" description:"打印请求与响应"`
}

type app struct {
	Options globalOptions `group:"Global Options"`

	ctx      context.Context
	stdout   io.Writer
	exitCode int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{ctx: ctx, stdout: stdout}
	parser := newParser(a)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, flagsErr.Message)
				return exitOK
			}
			fmt.Fprintln(stderr, flagsErr.Message)
			return exitError
		}
		if parser.Active != nil {
			fmt.Fprintf(stderr, "%s: %v\n", parser.Active.Name, err)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return exitError
	}
	return a.exitCode
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(a, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "vodctl"

	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"upload-video", "获取视频上传地址和凭证", &createUploadVideoCommand{app: a}},
		{"refresh-upload", "刷新视频上传凭证", &refreshUploadVideoCommand{app: a}},
		{"upload-image", "获取图片上传地址和凭证", &createUploadImageCommand{app: a}},
		{"info", "获取视频信息，支持多个视频 ID", &getVideoInfoCommand{app: a}},
		{"update", "修改视频信息", &updateVideoInfoCommand{app: a}},
		{"delete", "删除视频", &deleteVideoCommand{app: a}},
		{"list", "获取视频列表", &getVideoListCommand{app: a}},
		{"play-auth", "获取视频播放凭证", &getVideoPlayAuthCommand{app: a}},
	}
	for _, command := range commands {
		if _, err := parser.AddCommand(command.name, command.short, command.short, command.data); err != nil {
			panic(err)
		}
	}
	return parser
}

func (a *app) manager() (*vod.Manager, error) {
	if a.Options.Debug {
		client.DebugMode = true
		log.SetLevel(zapcore.DebugLevel)
	}
	return vod.NewManager(vod.ManagerConfig{
		AccessKeyID:     a.Options.AccessKeyID,
		AccessKeySecret: a.Options.AccessKeySecret,
		Endpoint:        a.Options.Endpoint,
		HTTPMethod:      a.Options.Method,
		Timeout:         a.Options.Timeout,
	})
}
