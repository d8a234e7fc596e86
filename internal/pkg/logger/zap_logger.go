package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// ZapLogger is the application logger, writing to the console and
// optionally to a file.
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// NewZapLogger creates a logger with a console core and, when a file path
// is configured, an additional JSON file core.
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	zl := &ZapLogger{filePath: config.FilePath}

	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		zl.file = file
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			level,
		))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zl.Logger = zapLogger
	zl.sugar = zapLogger.Sugar()

	return zl, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Sugar returns the sugared logger for printf-style logging
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// LogHTTPRequest writes a structured access-log entry
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.String("client_ip", clientIP),
		zap.String("user_id", userID),
		zap.String("request_id", requestID),
		zap.Int("status", statusCode),
		zap.Duration("latency", latency),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		zl.Logger.Error("HTTP request", fields...)
		return
	}
	zl.Logger.Info("HTTP request", fields...)
}

// Close flushes buffered entries and releases the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
