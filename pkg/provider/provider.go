// Package provider defines the interface for AI chat-completion backends.
// Each adapter implementation (e.g., groq) handles its own backend protocol
// internally; the engine only sees the package's own Request and Response
// types.
package provider

import "context"

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a chat-completion conversation.
type Message struct {
	Role    string
	Content string
}

// Request describes one chat-completion call.
type Request struct {
	Model       string
	Messages    []Message
	Temperature *float64
	MaxTokens   *int
}

// Usage holds token accounting reported by the backend.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is the backend's answer to a completion request.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Provider abstracts an AI chat-completion backend.
//
// Implementations must be safe for concurrent use by multiple goroutines;
// the handle is constructed once at startup and read-only afterwards.
type Provider interface {
	// Name returns the provider identifier (e.g., "groq").
	Name() string

	// Complete performs a single synchronous chat completion.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Close releases provider resources (HTTP clients, connections).
	Close() error
}
