// Package engine implements the RAGFIN1 answer provider: a single
// try/fallback flow per query with no state shared between requests.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/Macmac87/ragfin1/pkg/api"
	"github.com/Macmac87/ragfin1/pkg/debug"
	"github.com/Macmac87/ragfin1/pkg/observability"
	"github.com/Macmac87/ragfin1/pkg/provider"
	"github.com/Macmac87/ragfin1/pkg/transport"
)

// systemPrompt frames every AI call. It is the only instruction sent
// besides the user's question.
const systemPrompt = "You are RAGFIN1, an expert on international remittances, " +
	"money transfers, and financial services for the Americas. Provide accurate, " +
	"helpful information about sending money internationally, comparing providers, " +
	"exchange rates, and regulations."

// fallbackAnswer templates the deterministic answer used when no AI
// credential is configured. It embeds the question verbatim.
const fallbackAnswer = "I received your question: '%s'. To provide AI-powered answers, please configure GROQ_API_KEY."

// Confidence is a fixed constant per branch, not computed from any signal.
const (
	fallbackConfidence = 0.5
	liveConfidence     = 0.85
)

// Source labels are constant per branch.
var (
	fallbackSources = []string{"system"}
	liveSources     = []string{"groq_ai", "general_knowledge"}
)

// Config holds the fixed AI call parameters.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Engine produces answers for remittance questions. It implements
// transport.Answerer. The provider handle is injected at construction
// and read-only thereafter; a nil provider selects fallback mode for
// the lifetime of the process.
type Engine struct {
	provider provider.Provider
	cfg      Config
}

// Ensure Engine implements transport.Answerer at compile time.
var _ transport.Answerer = (*Engine)(nil)

// New creates a new Engine. A nil provider is valid and selects the
// deterministic fallback path.
func New(p provider.Provider, cfg Config) *Engine {
	return &Engine{
		provider: p,
		cfg:      cfg,
	}
}

// CreateAnswer answers one query. With a provider configured it issues a
// single synchronous completion call; any failure is returned unchanged
// (no retry, no partial result). Without a provider it returns the
// templated fallback answer.
func (e *Engine) CreateAnswer(ctx context.Context, req *api.QueryRequest) (*api.QueryResponse, error) {
	if e.provider == nil {
		debug.Log("engine", "fallback answer", "question_len", len(req.Question))
		return &api.QueryResponse{
			Answer:      fmt.Sprintf(fallbackAnswer, req.Question),
			Intent:      api.IntentInformational,
			Sources:     fallbackSources,
			ContextUsed: false,
			Confidence:  fallbackConfidence,
			Timestamp:   utcNow(),
		}, nil
	}

	provReq := &provider.Request{
		Model: e.cfg.Model,
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: systemPrompt},
			{Role: provider.RoleUser, Content: req.Question},
		},
	}
	if e.cfg.Temperature != 0 {
		temp := e.cfg.Temperature
		provReq.Temperature = &temp
	}
	if e.cfg.MaxTokens != 0 {
		maxTokens := e.cfg.MaxTokens
		provReq.MaxTokens = &maxTokens
	}

	debug.Log("engine", "completion call", "model", e.cfg.Model)

	start := time.Now()
	provResp, err := e.provider.Complete(ctx, provReq)
	observability.ObserveProviderCall(e.provider.Name(), e.cfg.Model, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &api.QueryResponse{
		Answer:      provResp.Content,
		Intent:      ClassifyIntent(req.Question),
		Sources:     liveSources,
		ContextUsed: req.Context.Present,
		Confidence:  liveConfidence,
		Timestamp:   utcNow(),
	}, nil
}

// utcNow formats the current time the way every timestamp in the API is
// reported.
func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
