package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envKey = "PORTFOLIO_ENV"

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	switch strings.ToLower(os.Getenv(envKey)) {
	case "dev", "test":
		logger, err = zap.NewDevelopment(opts...)
	default:
		opts = append(opts, zap.Fields(zap.Field{
			Key:    envKey,
			Type:   zapcore.StringType,
			String: os.Getenv(envKey),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ContextKey).(*zap.SugaredLogger); ok {
			return log
		}
	}
	log := zap.S()
	log.Debug("no logger found in ctx, using global")
	return log
}

// WithContext stores log on ctx under ContextKey, the same key gin
// handlers use via c.Set.
func WithContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log)
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
