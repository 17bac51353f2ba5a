// Package transport defines the handler interface and middleware chain for
// the RAGFIN1 HTTP transport layer.
//
// The transport layer bridges external clients and the answer engine. It
// deserializes incoming requests into the types defined in pkg/api,
// dispatches them for processing, and serializes responses back as JSON.
//
// # Handler Interface
//
// Answerer is the single contract between the transport layer and the
// engine: one question in, one answer out. Static reference endpoints
// (providers, countries, rates, regulations, comparisons) are served
// directly by the HTTP adapter and never pass through the Answerer.
//
// # Middleware
//
// The middleware chain wraps Answerer with cross-cutting concerns.
// Built-in middleware provides panic recovery, request ID assignment
// (X-Request-ID), and structured logging via log/slog.
package transport
