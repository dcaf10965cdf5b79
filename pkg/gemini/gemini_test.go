package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holistic-daily/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(context.Background(), gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "stay hydrated"}]}}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(context.Background(), gemini.Config{
		APIKey:     "test-api-key",
		Model:      "gemini-test",
		APIURL:     ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != "gemini-test" {
		t.Errorf("model = %s", client.Model())
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: "be brief",
		Messages:          []gemini.Message{{Role: "user", Text: "what should I eat?"}},
		JSON:              true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "stay hydrated" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 10 || resp.Usage.InputTokens != 7 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if _, ok := gotBody["contents"]; !ok {
		t.Errorf("request body missing contents: %v", gotBody)
	}
}

func TestGenerateContent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "bad request", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(context.Background(), gemini.Config{APIKey: "k", APIURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Message{{Role: "user", Text: "hi"}},
	}); err == nil {
		t.Fatal("expected error from 400 response")
	}
}
