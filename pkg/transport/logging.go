package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/Macmac87/ragfin1/pkg/api"
)

// Logging returns middleware that emits structured log entries for each
// query. The log entry includes the request ID (from context), duration,
// and either the classified intent or the error.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Answerer) Answerer {
		return AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
			start := time.Now()
			requestID := RequestIDFromContext(ctx)

			resp, err := next.CreateAnswer(ctx, req)

			attrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "query failed", attrs...)
			} else {
				attrs = append(attrs,
					slog.String("intent", string(resp.Intent)),
					slog.Bool("context_used", resp.ContextUsed),
				)
				logger.LogAttrs(ctx, slog.LevelInfo, "query completed", attrs...)
			}

			return resp, err
		})
	}
}
