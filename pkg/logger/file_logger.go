package logger

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogger writes JSON lines to a rotating file. Close releases the file.
type FileLogger struct {
	*zap.Logger
	rotator *lumberjack.Logger
}

func NewFileLogger(filePath string) *FileLogger {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Clean(filePath),
		MaxSize:    maxSize,
		MaxBackups: maxBack,
		MaxAge:     maxAge,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
	return &FileLogger{Logger: zap.New(core), rotator: rotator}
}

func (l *FileLogger) Close() error {
	_ = l.Sync()
	return l.rotator.Close()
}
