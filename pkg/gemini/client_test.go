package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-todo-manager/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock command from the prompt text
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"title\":\"mocked\"}" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			GenerationConfig: &gemini.GenerationConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema: gemini.Schema{
					"type": "object",
					"properties": gemini.Schema{
						"title": gemini.Schema{"type": "string"},
					},
				},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != `{"title":"mocked"}` {
			t.Errorf("unexpected response text: %q", resp.Text())
		}
	})

	t.Run("API Error Propagates", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		if _, err := client.GenerateContent(context.Background(), req); err == nil {
			t.Errorf("expected API error, got nil")
		}
	})

	t.Run("Empty Response Text", func(t *testing.T) {
		resp := &gemini.GenerateResponse{}
		if resp.Text() != "" {
			t.Errorf("expected empty text for empty candidates")
		}
	})
}
