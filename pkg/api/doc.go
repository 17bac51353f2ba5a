// Package api defines the wire types for the RAGFIN1 remittance
// intelligence API.
//
// This package provides the request and response types for every endpoint
// (queries, providers, countries, comparisons, recommendations, rates,
// regulations, health), the intent labels, and the structured [APIError]
// used across the service.
//
// The package has zero external dependencies (Go standard library only)
// and performs no I/O.
package api
