package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatalf("expected error for empty api key")
	}
	if _, err := NewClient("sk-test", ""); err == nil {
		t.Fatalf("expected error for empty model")
	}
	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %s, want 30s", client.httpClient.Timeout)
	}
}

func TestNewClientTimeoutOverride(t *testing.T) {
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "5")
	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Fatalf("timeout = %s, want 5s", client.httpClient.Timeout)
	}
}

func TestBuildClassifyPromptIncludesTask(t *testing.T) {
	prompt := BuildClassifyPrompt("call mom about dinner")
	if !strings.Contains(prompt, "call mom about dinner") {
		t.Fatalf("prompt missing task text: %s", prompt)
	}
	for _, field := range []string{"type", "urgency", "emotional_weight", "strategic_value", "short_summary"} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("prompt missing field %q", field)
		}
	}
}

func TestClassifyTaskReturnsReplyContent(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"type":"spiritual"}`}},
			},
		})
	}))
	defer srv.Close()

	prev := apiURL
	apiURL = srv.URL
	defer func() { apiURL = prev }()

	client, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	raw, err := client.ClassifyTask(context.Background(), "pray for guidance")
	if err != nil {
		t.Fatalf("ClassifyTask: %v", err)
	}
	if string(raw) != `{"type":"spiritual"}` {
		t.Fatalf("raw = %s", raw)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Fatalf("model = %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
	if !strings.Contains(captured.Messages[1].Content, "pray for guidance") {
		t.Fatalf("user message missing task text")
	}
	if captured.Temperature == nil || *captured.Temperature != 0 {
		t.Fatalf("expected temperature 0")
	}
	if captured.MaxTokens != maxCompletionTokens {
		t.Fatalf("max tokens = %d", captured.MaxTokens)
	}
}

func TestClassifyTaskErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "api error object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":{"message":"quota","type":"insufficient_quota"}}`))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  "}}]}`))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			prev := apiURL
			apiURL = srv.URL
			defer func() { apiURL = prev }()

			client, err := NewClient("sk-test", "gpt-4o-mini")
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if _, err := client.ClassifyTask(context.Background(), "pray"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
