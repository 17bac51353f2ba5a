// Package groq implements provider.Provider for Groq's OpenAI-compatible
// Chat Completions API. A single synchronous POST per completion, no
// retries: any failure is mapped to a structured API error tagged with
// its failure kind (network, upstream, malformed response) and surfaced
// to the caller as-is.
package groq
