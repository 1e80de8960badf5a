package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger      *zap.Logger
	loggerMutex sync.RWMutex
)

func init() {
	logger = newDefaultLogger(zapcore.WarnLevel)
}

func newDefaultLogger(level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("alivod")
}

// SetLogger 替换 SDK 内部使用的 Logger，传入 nil 则关闭日志
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMutex.Lock()
	logger = l
	loggerMutex.Unlock()
}

// SetLevel 以默认 Logger 重新构建指定级别的日志输出
func SetLevel(level zapcore.Level) {
	SetLogger(newDefaultLogger(level))
}

func current() *zap.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	current().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	current().Error(msg, fields...)
}
