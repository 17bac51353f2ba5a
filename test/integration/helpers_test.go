// Package integration provides integration tests for the RAGFIN1 API.
//
// Tests run against a real RAGFIN1 HTTP server backed by a mock Groq
// backend, both started in-process using net/http/httptest. A second
// server with no provider configured covers fallback mode.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Macmac87/ragfin1/pkg/engine"
	"github.com/Macmac87/ragfin1/pkg/provider/groq"
	transporthttp "github.com/Macmac87/ragfin1/pkg/transport/http"
)

// testEnv holds the shared servers for all integration tests.
var testEnv *TestEnvironment

// TestEnvironment holds the RAGFIN1 servers and mock backend for testing.
type TestEnvironment struct {
	// LiveServer has a Groq client wired to MockBackend.
	LiveServer *httptest.Server
	// FallbackServer has no provider configured.
	FallbackServer *httptest.Server
	MockBackend    *httptest.Server

	// backendFail makes the mock backend return the given status on the
	// next completion call. Zero means answer normally.
	backendFail atomic.Int32
}

// TestMain starts the mock backend and both servers before running tests.
func TestMain(m *testing.M) {
	testEnv = setupTestEnvironment()
	code := m.Run()
	testEnv.Teardown()
	os.Exit(code)
}

func setupTestEnvironment() *TestEnvironment {
	env := &TestEnvironment{}
	env.MockBackend = env.startMockBackend()

	prov, err := groq.New(groq.Config{
		BaseURL: env.MockBackend.URL,
		APIKey:  "test-key",
	})
	if err != nil {
		panic(fmt.Sprintf("creating provider: %v", err))
	}

	engineCfg := engine.Config{
		Model:       "mock-model",
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	liveAdapter := transporthttp.NewAdapter(engine.New(prov, engineCfg), transporthttp.DefaultConfig())
	env.LiveServer = httptest.NewServer(liveAdapter.Handler())

	fallbackAdapter := transporthttp.NewAdapter(engine.New(nil, engineCfg), transporthttp.DefaultConfig())
	env.FallbackServer = httptest.NewServer(fallbackAdapter.Handler())

	return env
}

// Teardown stops all servers.
func (env *TestEnvironment) Teardown() {
	for _, srv := range []*httptest.Server{env.LiveServer, env.FallbackServer, env.MockBackend} {
		if srv != nil {
			srv.Close()
		}
	}
}

// FailNextCompletion makes the mock backend return the given HTTP status
// for the next completion call.
func (env *TestEnvironment) FailNextCompletion(status int) {
	env.backendFail.Store(int32(status))
}

// --- HTTP helpers ---

// postJSON sends a POST request with JSON body and returns the response.
func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

// postEmpty sends a POST request without a body.
func postEmpty(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

// getURL sends a GET request and returns the response.
func getURL(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return string(body)
}

// decodeJSON reads the response body and decodes it into the target.
func decodeJSON(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decoding JSON: %v", err)
	}
}

// --- Mock backend ---

// startMockBackend creates an httptest server that mimics the Groq Chat
// Completions API with deterministic responses.
func (env *TestEnvironment) startMockBackend() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", env.handleMockChatCompletions)
	return httptest.NewServer(mux)
}

func (env *TestEnvironment) handleMockChatCompletions(w http.ResponseWriter, r *http.Request) {
	if status := env.backendFail.Swap(0); status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(status))
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "mock backend failure",
				"type":    "server_error",
			},
		})
		return
	}

	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":{"message":"invalid request","type":"invalid_request_error"}}`, http.StatusBadRequest)
		return
	}

	// Echo the user question back so tests can assert on the prompt
	// actually sent.
	var question string
	for _, msg := range req.Messages {
		if msg.Role == "user" {
			question = msg.Content
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-mock-1",
		"object":  "chat.completion",
		"model":   req.Model,
		"choices": []map[string]any{{
			"index": 0,
			"message": map[string]any{
				"role":    "assistant",
				"content": "Mock answer to: " + strings.TrimSpace(question),
			},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     12,
			"completion_tokens": 8,
			"total_tokens":      20,
		},
	})
}
