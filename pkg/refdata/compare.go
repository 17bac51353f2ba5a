package refdata

import (
	"github.com/Macmac87/ragfin1/pkg/api"
	"github.com/shopspring/decimal"
)

// Fixed provider terms used by the comparison and recommendation
// formulas. Wise charges a percentage at the better rate, Remitly a
// flat fee at a slightly worse rate but faster delivery.
var (
	wiseFeeRate    = decimal.NewFromFloat(0.01)
	wiseRate       = decimal.NewFromFloat(17.5)
	remitlyFlatFee = decimal.NewFromFloat(3.99)
	remitlyRate    = decimal.NewFromFloat(17.3)
)

// PriorityCost is the default recommendation priority.
const PriorityCost = "cost"

// Compare quotes the fixed provider terms for a transfer of the given
// amount. The from/to countries do not affect the formula.
func Compare(amount float64) api.Comparison {
	amt := decimal.NewFromFloat(amount)

	wiseFee := amt.Mul(wiseFeeRate)
	remitlyFee := remitlyFlatFee

	return api.Comparison{
		Comparison: []api.ProviderQuote{
			{
				Provider:      "Wise",
				Fee:           wiseFee.InexactFloat64(),
				ExchangeRate:  wiseRate.InexactFloat64(),
				TotalReceived: amt.Mul(wiseRate).Sub(wiseFee).InexactFloat64(),
				DeliveryTime:  "1-2 days",
			},
			{
				Provider:      "Remitly",
				Fee:           remitlyFee.InexactFloat64(),
				ExchangeRate:  remitlyRate.InexactFloat64(),
				TotalReceived: amt.Mul(remitlyRate).Sub(remitlyFee).InexactFloat64(),
				DeliveryTime:  "minutes",
			},
		},
		BestRate: "Wise",
		Fastest:  "Remitly",
	}
}

// Recommend picks a provider for the given amount and priority.
// Priority "cost" selects Wise (percentage fee at the best rate);
// anything else selects Remitly (fast flat-fee delivery).
func Recommend(amount float64, priority string) api.Recommendation {
	amt := decimal.NewFromFloat(amount)

	rec := api.RecommendedProvider{
		Provider:      "Remitly",
		Reason:        "Best option for " + priority,
		EstimatedCost: remitlyFlatFee.InexactFloat64(),
	}
	if priority == PriorityCost {
		rec.Provider = "Wise"
		rec.EstimatedCost = amt.Mul(wiseFeeRate).InexactFloat64()
	}

	return api.Recommendation{Recommendation: rec}
}
