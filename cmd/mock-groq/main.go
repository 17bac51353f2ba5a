// Command mock-groq runs a deterministic Chat Completions server that
// stands in for the Groq API during local development. Point the service
// at it with RAGFIN_BASE_URL and any GROQ_API_KEY value. Responses are
// generated from a small remittance knowledge table keyed on words in
// the question.
//
// Configuration:
//
//	MOCK_PORT - Listen port (default: 9090)
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Macmac87/ragfin1/pkg/debug"
)

func main() {
	debug.Init()

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handleChatCompletions)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock groq backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock groq backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock groq backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int     `json:"index"`
	Message      chatMsg `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":{"message":"invalid request","type":"invalid_request_error"}}`, http.StatusBadRequest)
		return
	}

	resp := answerFor(lastUserMessage(&req))
	resp.Model = req.Model
	if resp.Model == "" {
		resp.Model = "mock-model"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// answerFor picks a canned remittance answer based on keywords in the
// question. Unknown questions get a generic reply so the serving path
// stays exercised either way.
func answerFor(question string) chatResponse {
	lower := strings.ToLower(question)

	text := "International transfers typically settle in 1-3 business days. " +
		"Fees and exchange rates vary by provider, so compare before sending."
	switch {
	case strings.Contains(lower, "fee"):
		text = "Wise charges 0.5-1% of the transfer amount. Remitly charges a flat $3.99 on most corridors."
	case strings.Contains(lower, "rate"):
		text = "Mid-market rates change continuously. Wise applies the mid-market rate; most competitors add a margin on top."
	case strings.Contains(lower, "compare"):
		text = "For USD to MXN, Wise usually delivers the most pesos while Remitly delivers fastest."
	case strings.Contains(lower, "regulat"):
		text = "Transfers over $10,000 USD must be reported. A valid ID is required for all international transfers."
	}

	return chatResponse{
		ID:     "chatcmpl-mock-1",
		Object: "chat.completion",
		Choices: []chatChoice{
			{
				Index:        0,
				Message:      chatMsg{Role: "assistant", Content: text},
				FinishReason: "stop",
			},
		},
		Usage: chatUsage{PromptTokens: 25, CompletionTokens: 30, TotalTokens: 55},
	}
}

func lastUserMessage(req *chatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			return req.Messages[i].Content
		}
	}
	return ""
}
