package transport

import (
	"context"

	"github.com/Macmac87/ragfin1/pkg/api"
)

// Answerer handles the core query operation: it receives a validated
// question and produces the answer, either from the AI backend or from
// the deterministic fallback.
type Answerer interface {
	CreateAnswer(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error)
}

// AnswererFunc is an adapter that allows using an ordinary function
// as an Answerer.
type AnswererFunc func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error)

// CreateAnswer calls f(ctx, req).
func (f AnswererFunc) CreateAnswer(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
	return f(ctx, req)
}
