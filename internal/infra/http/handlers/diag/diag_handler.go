package diag

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type TokenChecker interface {
	Exchange(ctx context.Context) (string, error)
}

// DiagHandler re-validates credential presence and token-exchange health
// for operational probes. It bypasses the token cache so a stale cached
// token cannot mask broken credentials.
type DiagHandler struct {
	tracer       trace.Tracer
	env          string
	clientID     string
	clientSecret string
	tokens       TokenChecker
}

func New(
	tracer trace.Tracer,
	env string,
	clientID string,
	clientSecret string,
	tokens TokenChecker,
) *DiagHandler {
	return &DiagHandler{
		tracer:       tracer,
		env:          env,
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
	}
}
