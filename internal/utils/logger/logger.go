package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var globalLogger *zap.SugaredLogger

// Init initializes the global logger based on configuration.
// Console output always goes to stdout; when a file is configured it is written as well.
// Init 根据配置初始化全局日志记录器。控制台输出始终写到 stdout，配置文件路径时同时写入文件。
func Init(cfg LoggingConfig) {
	globalLogger = New(cfg, os.Stdout)
}

// New builds a logger writing to out and, if enabled, to the rotated log file.
// New 构建写入 out（以及可选的轮转日志文件）的 Logger。
func New(cfg LoggingConfig, out io.Writer) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(out), level)}

	var dirErr error
	if cfg.Enabled && cfg.Path != "" {
		// Create directory if not exists
		// 如果目录不存在则创建
		if dirErr = os.MkdirAll(filepath.Dir(cfg.Path), 0755); dirErr == nil {
			rotator := &lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
		}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	if dirErr != nil {
		// Fall back to console only
		// 回退到仅控制台输出
		l.Warnf("[WARN]  Failed to create log directory: %v", dirErr)
	}
	l.Debugf("[LOG] Logging initialized (Level: %s, Path: %s)", level, cfg.Path)
	return l
}

// Sync flushes any buffered log entries.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger from context or global logger
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	if globalLogger == nil {
		// Fallback to basic stdout logger if not initialized
		// 未初始化时回退到 stdout
		return New(LoggingConfig{Level: "info"}, os.Stdout)
	}
	return globalLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
