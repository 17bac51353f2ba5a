package engine

import (
	"strings"

	"github.com/Macmac87/ragfin1/pkg/api"
)

// ClassifyIntent labels a question by a single keyword check: questions
// containing "compare" (case-insensitive) are comparisons, everything
// else is informational.
func ClassifyIntent(question string) api.Intent {
	if strings.Contains(strings.ToLower(question), "compare") {
		return api.IntentComparison
	}
	return api.IntentInformational
}
