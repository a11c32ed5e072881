package logger

import (
	"context"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

type closeLog func() error

var baseLogger *zap.Logger

func Init() (closeLog, error) {
	config := zap.NewDevelopmentConfig()
	// ECS-compatible encoding keeps logs shippable to the Elastic stack.
	config.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(config.EncoderConfig)

	var err error
	baseLogger, err = config.Build(ecszap.WrapCoreOption())

	if err != nil {
		return nil, err
	}

	return func() error {
		return baseLogger.Sync()
	}, nil
}

func Log() *zap.Logger {
	if baseLogger == nil {
		// Not initialized (e.g. in tests); discard instead of panicking.
		return zap.NewNop()
	}
	return baseLogger
}

func With(fields ...zap.Field) *zap.Logger {
	return Log().With(fields...)
}

type loggerKey struct{}

func NewContext(parent context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

func FromContext(ctx context.Context) *zap.Logger {
	log, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if ok {
		return log
	}
	return Log()
}
