package api

import "encoding/json"

// Service metadata reported by the health endpoint.
const (
	Service = "RAGFIN1"
	Version = "1.0.0"
)

// Intent is a coarse label classifying the nature of a user's question.
type Intent string

const (
	// IntentInformational marks general questions about remittances.
	IntentInformational Intent = "informational"

	// IntentComparison marks questions that ask to compare providers.
	IntentComparison Intent = "comparison"
)

// QueryContext is the optional opaque context attached to a query.
// Present distinguishes a context that was supplied in the request body
// (even an empty one) from an absent or null field, so callers never
// have to reason about nil maps.
type QueryContext struct {
	Present bool
	Values  map[string]any
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the
// context absent; any object marks it present.
func (c *QueryContext) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = QueryContext{}
		return nil
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	c.Present = true
	c.Values = values
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c QueryContext) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Values)
}

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Question string       `json:"question"`
	Context  QueryContext `json:"context,omitzero"`
}

// QueryResponse is the answer returned for a query.
type QueryResponse struct {
	Answer      string   `json:"answer"`
	Intent      Intent   `json:"intent"`
	Sources     []string `json:"sources"`
	ContextUsed bool     `json:"context_used"`
	Confidence  float64  `json:"confidence"`
	Timestamp   string   `json:"timestamp"`
}

// ProviderInfo describes a remittance provider and the countries it serves.
type ProviderInfo struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Countries []string `json:"countries"`
}

// ProviderList is the response of GET /api/v1/providers.
type ProviderList struct {
	Providers []ProviderInfo `json:"providers"`
	Total     int            `json:"total"`
}

// Country is a supported corridor endpoint.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryList is the response of GET /api/v1/countries.
type CountryList struct {
	Countries []Country `json:"countries"`
	Total     int       `json:"total"`
}

// ProviderQuote is one provider's terms for a transfer in a comparison.
type ProviderQuote struct {
	Provider      string  `json:"provider"`
	Fee           float64 `json:"fee"`
	ExchangeRate  float64 `json:"exchange_rate"`
	TotalReceived float64 `json:"total_received"`
	DeliveryTime  string  `json:"delivery_time"`
}

// Comparison is the response of POST /api/v1/compare.
type Comparison struct {
	Comparison []ProviderQuote `json:"comparison"`
	BestRate   string          `json:"best_rate"`
	Fastest    string          `json:"fastest"`
}

// RecommendedProvider is the single provider picked by a recommendation.
type RecommendedProvider struct {
	Provider      string  `json:"provider"`
	Reason        string  `json:"reason"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Recommendation is the response of POST /api/v1/recommend.
type Recommendation struct {
	Recommendation RecommendedProvider `json:"recommendation"`
}

// RateQuote is the response of GET /api/v1/rates.
type RateQuote struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Timestamp string  `json:"timestamp"`
}

// RegulationInfo is the response of GET /api/v1/regulations.
type RegulationInfo struct {
	Country     string   `json:"country"`
	Regulations []string `json:"regulations"`
	Updated     string   `json:"updated"`
}

// Health is the payload of the root health endpoint.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Message string `json:"message"`
}
