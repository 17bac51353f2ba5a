package refdata

// rates maps "FROM-TO" currency pairs to their exchange rate.
var rates = map[string]float64{
	"USD-MXN": 17.5,
	"USD-COL": 4200,
	"USD-BRL": 5.2,
}

// DefaultRate is returned for currency pairs the table does not cover.
const DefaultRate = 1.0

// Rate looks up the exchange rate for a currency pair. Unknown pairs
// return DefaultRate; currency codes are not validated against any
// registry.
func Rate(from, to string) float64 {
	if r, ok := rates[from+"-"+to]; ok {
		return r
	}
	return DefaultRate
}
