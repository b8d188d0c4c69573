package endpoints

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-kit/kit/endpoint"
)

// Endpoints groups every endpoint the HTTP router exposes.
type Endpoints struct {
	SearchEndpoint SearchEndpoint
}

// LoggingMiddleware logs the duration and outcome of every call.
func LoggingMiddleware(name string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				attrs := []any{
					slog.String("endpoint", name),
					slog.Int64("took_ms", time.Since(begin).Milliseconds()),
				}

				if err != nil {
					slog.WarnContext(ctx, "endpoint call failed", append(attrs, slog.Any("error", err))...)
					return
				}

				slog.InfoContext(ctx, "endpoint call succeeded", attrs...)
			}(time.Now())

			return next(ctx, request)
		}
	}
}
