package refdata

import "github.com/Macmac87/ragfin1/pkg/api"

// providers is the catalog of remittance providers the service knows about.
var providers = []api.ProviderInfo{
	{ID: "wise", Name: "Wise", Countries: []string{"USA", "UK", "EU", "MEX", "COL"}},
	{ID: "remitly", Name: "Remitly", Countries: []string{"USA", "MEX", "PHL", "IND"}},
	{ID: "western_union", Name: "Western Union", Countries: []string{"Worldwide"}},
	{ID: "moneygram", Name: "MoneyGram", Countries: []string{"Worldwide"}},
	{ID: "xoom", Name: "Xoom", Countries: []string{"USA", "MEX", "PHL", "IND"}},
}

// Providers returns the remittance provider catalog.
func Providers() []api.ProviderInfo {
	out := make([]api.ProviderInfo, len(providers))
	for i, p := range providers {
		p.Countries = append([]string(nil), p.Countries...)
		out[i] = p
	}
	return out
}
