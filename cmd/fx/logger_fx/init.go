package logger_fx

import (
	"os"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gigcampus/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger() (*zap.Logger, error) {
	return logger.New(logger.Config{
		Filename:   os.Getenv("LOG_FILE"),
		MaxSize:    cast.ToInt(os.Getenv("LOG_MAX_SIZE")),
		MaxBackups: cast.ToInt(os.Getenv("LOG_MAX_BACKUPS")),
		MaxAge:     cast.ToInt(os.Getenv("LOG_MAX_AGE")),
		Compress:   cast.ToBool(os.Getenv("LOG_COMPRESS")),
		Level:      os.Getenv("LOG_LEVEL"),
	})
}
