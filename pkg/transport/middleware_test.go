package transport

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Macmac87/ragfin1/pkg/api"
)

func okAnswerer(resp *api.QueryResponse) Answerer {
	return AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
		return resp, nil
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next Answerer) Answerer {
			return AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
				order = append(order, name)
				return next.CreateAnswer(ctx, req)
			})
		}
	}

	handler := Chain(mw("a"), mw("b"), mw("c"))(okAnswerer(&api.QueryResponse{}))
	if _, err := handler.CreateAnswer(context.Background(), &api.QueryRequest{}); err != nil {
		t.Fatalf("CreateAnswer() error: %v", err)
	}

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("middleware order = %v, want [a b c]", order)
	}
}

func TestRecoveryConvertsPanics(t *testing.T) {
	panicking := AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
		panic("boom")
	})

	_, err := Recovery()(panicking).CreateAnswer(context.Background(), &api.QueryRequest{})
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *api.APIError", err)
	}
	if apiErr.Type != api.ErrorTypeServerError {
		t.Errorf("Type = %q, want server_error", apiErr.Type)
	}
	if !strings.Contains(apiErr.Message, "boom") {
		t.Errorf("Message = %q, want panic value", apiErr.Message)
	}
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	var seen string
	inner := AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
		seen = RequestIDFromContext(ctx)
		return &api.QueryResponse{}, nil
	})

	if _, err := RequestID()(inner).CreateAnswer(context.Background(), &api.QueryRequest{}); err != nil {
		t.Fatalf("CreateAnswer() error: %v", err)
	}
	if seen == "" {
		t.Error("request ID was not generated")
	}
	if len(seen) != 32 {
		t.Errorf("request ID %q has length %d, want 32 hex chars", seen, len(seen))
	}
}

func TestRequestIDKeepsExisting(t *testing.T) {
	var seen string
	inner := AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
		seen = RequestIDFromContext(ctx)
		return &api.QueryResponse{}, nil
	})

	ctx := ContextWithRequestID(context.Background(), "req-from-header")
	if _, err := RequestID()(inner).CreateAnswer(ctx, &api.QueryRequest{}); err != nil {
		t.Fatalf("CreateAnswer() error: %v", err)
	}
	if seen != "req-from-header" {
		t.Errorf("request ID = %q, want req-from-header", seen)
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	want := &api.QueryResponse{Intent: api.IntentInformational}
	resp, err := Logging(logger)(okAnswerer(want)).CreateAnswer(context.Background(), &api.QueryRequest{Question: "q"})
	if err != nil {
		t.Fatalf("CreateAnswer() error: %v", err)
	}
	if resp != want {
		t.Error("logging middleware must not replace the response")
	}

	failing := AnswererFunc(func(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
		return nil, api.NewServerError("down")
	})
	if _, err := Logging(logger)(failing).CreateAnswer(context.Background(), &api.QueryRequest{}); err == nil {
		t.Error("logging middleware must not swallow errors")
	}
}
