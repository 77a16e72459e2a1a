package logger

import (
	"os"
	"path/filepath"

	"github.com/mauops/mau-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func New(conf *config.Config) *zap.Logger {
	cores := []zapcore.Core{
		zapcore.NewCore(
			getConsoleEncoder(),
			zapcore.AddSync(os.Stdout),
			getLevel(conf.Log.Level),
		),
	}

	if conf.Log.MaxSize > 0 {
		rotate := getLumberjackLogger(conf)
		cores = append(cores, zapcore.NewCore(
			getJSONEncoder(),
			zapcore.AddSync(&rotate),
			getLevel(conf.Log.Level),
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func getLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func getLumberjackLogger(conf *config.Config) lumberjack.Logger {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return lumberjack.Logger{
		Filename:   filepath.Join(wd, "debug", "log.jsonl"),
		MaxSize:    conf.Log.MaxSize,
		MaxBackups: conf.Log.MaxBackups,
		MaxAge:     conf.Log.MaxAge,
		Compress:   conf.Log.Compress,
	}
}

func getConsoleEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(conf)
}

func getJSONEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.TimeKey = "time"
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(conf)
}
