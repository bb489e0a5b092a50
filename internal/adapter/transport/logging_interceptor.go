package transport

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

// NewLoggingInterceptor creates a Connect interceptor that logs every unary
// call with its outcome and duration.
func NewLoggingInterceptor(logger *zap.Logger) connect.Interceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				fields = append(fields,
					zap.String("code", connect.CodeOf(err).String()),
					zap.Error(err))
				logger.Warn("rpc failed", fields...)
				return nil, err
			}
			logger.Info("rpc handled", fields...)
			return res, nil
		}
	})
}
