package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Macmac87/ragfin1/pkg/api"
)

func TestListProviders(t *testing.T) {
	resp := getURL(t, testEnv.LiveServer.URL+"/api/v1/providers")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var list api.ProviderList
	decodeJSON(t, resp, &list)

	if list.Total != 5 {
		t.Errorf("total = %d, want 5", list.Total)
	}
	byID := map[string]api.ProviderInfo{}
	for _, p := range list.Providers {
		byID[p.ID] = p
	}
	wise, ok := byID["wise"]
	if !ok {
		t.Fatal("wise not in provider list")
	}
	if wise.Name != "Wise" || len(wise.Countries) != 5 {
		t.Errorf("wise = %+v", wise)
	}
}

func TestListCountries(t *testing.T) {
	resp := getURL(t, testEnv.LiveServer.URL+"/api/v1/countries")

	var list api.CountryList
	decodeJSON(t, resp, &list)

	if list.Total != 5 {
		t.Errorf("total = %d, want 5", list.Total)
	}
	found := false
	for _, c := range list.Countries {
		if c.Code == "MEX" && c.Name == "Mexico" {
			found = true
		}
	}
	if !found {
		t.Error("Mexico not in country list")
	}
}

func TestCompareProviders(t *testing.T) {
	url := testEnv.LiveServer.URL + "/api/v1/compare?amount=100&from_country=USA&to_country=MEX"
	resp := postEmpty(t, url)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var cmp api.Comparison
	decodeJSON(t, resp, &cmp)

	if len(cmp.Comparison) != 2 {
		t.Fatalf("len(comparison) = %d, want 2", len(cmp.Comparison))
	}

	wise := cmp.Comparison[0]
	if wise.Provider != "Wise" || wise.Fee != 1.00 || wise.ExchangeRate != 17.5 {
		t.Errorf("wise quote = %+v", wise)
	}
	if wise.TotalReceived != 1749 {
		t.Errorf("wise total_received = %g, want 1749", wise.TotalReceived)
	}

	remitly := cmp.Comparison[1]
	if remitly.Provider != "Remitly" || remitly.Fee != 3.99 || remitly.ExchangeRate != 17.3 {
		t.Errorf("remitly quote = %+v", remitly)
	}
	if remitly.TotalReceived != 1726.01 {
		t.Errorf("remitly total_received = %g, want 1726.01", remitly.TotalReceived)
	}

	if cmp.BestRate != "Wise" {
		t.Errorf("best_rate = %q, want Wise", cmp.BestRate)
	}
	if cmp.Fastest != "Remitly" {
		t.Errorf("fastest = %q, want Remitly", cmp.Fastest)
	}
}

func TestRecommendProvider(t *testing.T) {
	tests := []struct {
		priority string
		provider string
	}{
		{"cost", "Wise"},
		{"speed", "Remitly"},
		{"", "Wise"}, // defaults to cost
	}
	for _, tt := range tests {
		t.Run("priority="+tt.priority, func(t *testing.T) {
			url := testEnv.LiveServer.URL + "/api/v1/recommend?amount=250&from_country=USA&to_country=COL"
			if tt.priority != "" {
				url += "&priority=" + tt.priority
			}
			resp := postEmpty(t, url)

			var rec api.Recommendation
			decodeJSON(t, resp, &rec)

			if rec.Recommendation.Provider != tt.provider {
				t.Errorf("provider = %q, want %q", rec.Recommendation.Provider, tt.provider)
			}
		})
	}
}

func TestExchangeRates(t *testing.T) {
	tests := []struct {
		from, to string
		rate     float64
	}{
		{"USD", "MXN", 17.5},
		{"USD", "COL", 4200},
		{"USD", "BRL", 5.2},
		{"USD", "JPY", 1.0}, // unknown pair
	}
	for _, tt := range tests {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			url := fmt.Sprintf("%s/api/v1/rates?from_currency=%s&to_currency=%s",
				testEnv.LiveServer.URL, tt.from, tt.to)
			resp := getURL(t, url)

			var quote api.RateQuote
			decodeJSON(t, resp, &quote)

			if quote.Rate != tt.rate {
				t.Errorf("rate = %g, want %g", quote.Rate, tt.rate)
			}
			if quote.From != tt.from || quote.To != tt.to {
				t.Errorf("quote = %+v", quote)
			}
		})
	}
}

func TestRegulations(t *testing.T) {
	resp := getURL(t, testEnv.LiveServer.URL+"/api/v1/regulations?country=BRA")

	var info api.RegulationInfo
	decodeJSON(t, resp, &info)

	if info.Country != "BRA" {
		t.Errorf("country = %q, want BRA", info.Country)
	}
	if len(info.Regulations) != 3 {
		t.Errorf("len(regulations) = %d, want 3", len(info.Regulations))
	}
}
