package services

import (
	"context"
	"log/slog"

	"github.com/FinHubBR/finhub_backend/internal/middleware"
)

// BaseService is embedded by the concrete services to give them uniform
// access to the request-scoped logger.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	if l := middleware.GetLoggerFromCtx(ctx); l != nil {
		return l
	}
	return slog.Default()
}

// LogInfo logs an info message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.logger(ctx).Info(msg, keyvals...)
}

// LogError logs an error, prepending the error itself to the attributes.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.logger(ctx).Error(msg, args...)
}
