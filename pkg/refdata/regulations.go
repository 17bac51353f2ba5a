package refdata

// regulations are the regulatory notes returned for any country.
// TODO: source per-country rules once a real regulatory feed is chosen.
var regulations = []string{
	"Maximum single transfer limit",
	"KYC requirements",
	"Tax implications",
}

// Regulations returns the regulatory notes for a transfer corridor.
func Regulations() []string {
	return append([]string(nil), regulations...)
}
