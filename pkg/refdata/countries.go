package refdata

import "github.com/Macmac87/ragfin1/pkg/api"

// countries lists the corridor endpoints currently supported.
var countries = []api.Country{
	{Code: "USA", Name: "United States"},
	{Code: "MEX", Name: "Mexico"},
	{Code: "COL", Name: "Colombia"},
	{Code: "BRA", Name: "Brazil"},
	{Code: "ARG", Name: "Argentina"},
}

// Countries returns the supported country list.
func Countries() []api.Country {
	return append([]api.Country(nil), countries...)
}
