// Package http serves the RAGFIN1 API over HTTP. The Adapter routes
// requests to the appropriate handler and serializes responses; Server
// wraps it with an http.Server and lifecycle management.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Macmac87/ragfin1/pkg/api"
	"github.com/Macmac87/ragfin1/pkg/refdata"
	"github.com/Macmac87/ragfin1/pkg/transport"
)

// Adapter serves the RAGFIN1 API over HTTP.
type Adapter struct {
	answerer transport.Answerer
	mux      *http.ServeMux
	config   Config
}

// Config holds configuration for the HTTP adapter.
type Config struct {
	MaxBodySize int64
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		MaxBodySize: 1 << 20, // 1 MB
	}
}

// NewAdapter creates an HTTP adapter with the given Answerer and options.
// Middleware is applied to the Answerer in the given order.
func NewAdapter(answerer transport.Answerer, cfg Config, middlewares ...transport.Middleware) *Adapter {
	// Apply middleware chain to the answerer.
	if len(middlewares) > 0 {
		answerer = transport.Chain(middlewares...)(answerer)
	}

	a := &Adapter{
		answerer: answerer,
		mux:      http.NewServeMux(),
		config:   cfg,
	}

	a.mux.HandleFunc("GET /{$}", a.handleHealth)
	a.mux.HandleFunc("POST /api/v1/query", a.handleQuery)
	a.mux.HandleFunc("GET /api/v1/providers", a.handleProviders)
	a.mux.HandleFunc("GET /api/v1/countries", a.handleCountries)
	a.mux.HandleFunc("POST /api/v1/compare", a.handleCompare)
	a.mux.HandleFunc("POST /api/v1/recommend", a.handleRecommend)
	a.mux.HandleFunc("GET /api/v1/rates", a.handleRates)
	a.mux.HandleFunc("GET /api/v1/regulations", a.handleRegulations)

	return a
}

// Handler returns the http.Handler for this adapter. Use this to integrate
// with an http.Server or test with httptest. The returned handler includes
// HTTP-level middleware for request ID propagation.
func (a *Adapter) Handler() http.Handler {
	return httpRequestIDMiddleware(a.mux)
}

// handleHealth handles GET /.
func (a *Adapter) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.Health{
		Status:  "healthy",
		Service: api.Service,
		Version: api.Version,
		Message: "Welcome to RAGFIN1 API",
	})
}

// handleQuery handles POST /api/v1/query.
func (a *Adapter) handleQuery(w http.ResponseWriter, r *http.Request) {
	// Validate Content-Type.
	ct := r.Header.Get("Content-Type")
	if ct != "" && ct != "application/json" {
		transport.WriteErrorResponse(w,
			api.NewInvalidRequestError("content_type", "Content-Type must be application/json"),
			http.StatusUnsupportedMediaType,
		)
		return
	}

	// Limit body size.
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)

	// Decode request.
	var req api.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			transport.WriteErrorResponse(w,
				api.NewInvalidRequestError("body", fmt.Sprintf("request body too large (max %d bytes)", a.config.MaxBodySize)),
				http.StatusRequestEntityTooLarge,
			)
			return
		}
		transport.WriteErrorResponse(w,
			api.NewInvalidRequestError("body", "invalid JSON: "+err.Error()),
			http.StatusBadRequest,
		)
		return
	}

	// Shape validation happens before the answerer runs.
	if apiErr := api.ValidateQueryRequest(&req); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	resp, err := a.answerer.CreateAnswer(r.Context(), &req)
	if err != nil {
		var apiErr *api.APIError
		if !errors.As(err, &apiErr) {
			apiErr = api.NewServerError(err.Error())
		}
		transport.WriteAPIError(w, apiErr)
		return
	}

	writeJSON(w, resp)
}

// handleProviders handles GET /api/v1/providers.
func (a *Adapter) handleProviders(w http.ResponseWriter, r *http.Request) {
	providers := refdata.Providers()
	writeJSON(w, api.ProviderList{Providers: providers, Total: len(providers)})
}

// handleCountries handles GET /api/v1/countries.
func (a *Adapter) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries := refdata.Countries()
	writeJSON(w, api.CountryList{Countries: countries, Total: len(countries)})
}

// handleCompare handles POST /api/v1/compare.
func (a *Adapter) handleCompare(w http.ResponseWriter, r *http.Request) {
	amount, _, _, apiErr := parseTransferParams(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	writeJSON(w, refdata.Compare(amount))
}

// handleRecommend handles POST /api/v1/recommend.
func (a *Adapter) handleRecommend(w http.ResponseWriter, r *http.Request) {
	amount, _, _, apiErr := parseTransferParams(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	priority := r.URL.Query().Get("priority")
	if priority == "" {
		priority = refdata.PriorityCost
	}

	writeJSON(w, refdata.Recommend(amount, priority))
}

// handleRates handles GET /api/v1/rates.
func (a *Adapter) handleRates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from_currency")
	to := q.Get("to_currency")
	if from == "" {
		transport.WriteAPIError(w, api.NewInvalidRequestError("from_currency", "from_currency is required"))
		return
	}
	if to == "" {
		transport.WriteAPIError(w, api.NewInvalidRequestError("to_currency", "to_currency is required"))
		return
	}

	writeJSON(w, api.RateQuote{
		From:      from,
		To:        to,
		Rate:      refdata.Rate(from, to),
		Timestamp: utcNow(),
	})
}

// handleRegulations handles GET /api/v1/regulations.
func (a *Adapter) handleRegulations(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		transport.WriteAPIError(w, api.NewInvalidRequestError("country", "country is required"))
		return
	}

	writeJSON(w, api.RegulationInfo{
		Country:     country,
		Regulations: refdata.Regulations(),
		Updated:     utcNow(),
	})
}

// parseTransferParams extracts the shared compare/recommend query
// parameters. The country codes are required but not validated against
// any registry.
func parseTransferParams(r *http.Request) (amount float64, from, to string, apiErr *api.APIError) {
	q := r.URL.Query()

	amountStr := q.Get("amount")
	if amountStr == "" {
		return 0, "", "", api.NewInvalidRequestError("amount", "amount is required")
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return 0, "", "", api.NewInvalidRequestError("amount", "amount must be a number")
	}

	from = q.Get("from_country")
	if from == "" {
		return 0, "", "", api.NewInvalidRequestError("from_country", "from_country is required")
	}
	to = q.Get("to_country")
	if to == "" {
		return 0, "", "", api.NewInvalidRequestError("to_country", "to_country is required")
	}

	return amount, from, to, nil
}

// writeJSON writes a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// utcNow formats the current time the way every timestamp in the API is
// reported.
func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// httpRequestIDMiddleware is HTTP-level middleware that propagates the
// X-Request-ID header. If present in the request, it is forwarded into
// the context and echoed back on the response.
func httpRequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Request-ID"); id != "" {
			ctx := transport.ContextWithRequestID(r.Context(), id)
			r = r.WithContext(ctx)
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r)
	})
}
