package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "model says hi"}}}},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL, Model: "gemini-2.0-flash"}, nil)

	out, err := c.Generate(context.Background(), "write a review")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "model says hi" {
		t.Errorf("out = %q", out)
	}
	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "k" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotBody["contents"] == nil {
		t.Error("request missing contents")
	}
}

func TestGenerateHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL, Model: "gemini-2.0-flash"}, nil)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("err = %v, want status 429", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL, Model: "m"}, nil)
	if _, err := c.Generate(context.Background(), "prompt"); err == nil {
		t.Error("expected error for empty candidates")
	}
}

func TestName(t *testing.T) {
	c := NewClient(Config{APIKey: "k", Model: "gemini-2.5-flash-lite"}, nil)
	if c.Name() != "gemini/gemini-2.5-flash-lite" {
		t.Errorf("Name() = %q", c.Name())
	}
}
