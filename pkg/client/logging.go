package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/woojoong88/atomix/pkg/client/v1"
)

type noLogKey struct{}

// WithoutLogging marks ctx so that requests issued with it are not logged.
func WithoutLogging(ctx context.Context) context.Context {
	return context.WithValue(ctx, noLogKey{}, true)
}

func loggingEnabled(ctx context.Context) bool {
	skip, _ := ctx.Value(noLogKey{}).(bool)
	return !skip
}

type loggingDoer struct {
	doer v1.HttpRequestDoer
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	if !loggingEnabled(req.Context()) {
		return d.doer.Do(req)
	}

	id := uuid.NewString()
	start := time.Now()

	slog.Debug("http request", "request-id", id, "method", req.Method, "url", req.URL.String())

	res, err := d.doer.Do(req)
	if err != nil {
		slog.Debug("http request failed", "request-id", id, "duration", time.Since(start), "err", err)
		return nil, err
	}

	slog.Debug("http response", "request-id", id, "status", res.StatusCode, "duration", time.Since(start))
	return res, nil
}
