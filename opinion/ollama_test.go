package opinion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tauthy/errors"

	"github.com/stretchr/testify/require"
)

func TestOllamaClient_Query(t *testing.T) {
	req := require.New(t)
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/generate", r.URL.Path)
		req.Equal(http.MethodPost, r.Method)
		req.NoError(json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{
			Response: "Sure! ```json\n{\"ai\": 72.5, \"human\": 27.5, \"reason\": \"very even sentence length\"}\n```",
			Done:     true,
		})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL+"/", "llama3", time.Second)
	opinion, err := client.Query(context.Background(), "some text to judge")

	req.NoError(err)
	req.Equal("llama3", got.Model)
	req.False(got.Stream)
	req.Contains(got.Prompt, "some text to judge")
	req.InDelta(72.5, opinion.AI, 1e-9)
	req.InDelta(27.5, opinion.Human, 1e-9)
	req.Equal("very even sentence length", opinion.Reason)
	req.Equal("llama3", opinion.Model)
	req.False(opinion.CreatedAt.IsZero())
}

func TestOllamaClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}},
		{"reply without object", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(generateResponse{Response: "I cannot tell."})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewOllamaClient(server.URL, "llama3", time.Second).Query(context.Background(), "text")
			require.ErrorIs(t, err, errors.ErrOpinionUnavailable)
		})
	}
}

func TestOllamaClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewOllamaClient(server.URL, "llama3", 20*time.Millisecond).Query(context.Background(), "text")
	require.ErrorIs(t, err, errors.ErrOpinionUnavailable)
}

func TestParseVerdict_Clamps(t *testing.T) {
	req := require.New(t)
	v, err := ParseVerdict(`{"ai": 140, "human": -3, "reason": "  odd  "}`)
	req.NoError(err)
	req.Equal(100.0, v.AI)
	req.Equal(0.0, v.Human)
	req.Equal("odd", v.Reason)

	_, err = ParseVerdict(`{"ai": "lots"}`)
	req.ErrorIs(err, errors.ErrOpinionUnavailable)
}

func TestParseVerdict_IgnoresTrailingProse(t *testing.T) {
	req := require.New(t)
	reply := "Sure:\n```json\n{\"ai\": 70, \"human\": 30, \"reason\": \"uniform {tone}\"}\n```\n" +
		"Note: a set like {a, b} or a map {\"x\": 1} would change nothing."
	v, err := ParseVerdict(reply)
	req.NoError(err)
	req.Equal(70.0, v.AI)
	req.Equal(30.0, v.Human)
	req.Equal("uniform {tone}", v.Reason)

	_, err = ParseVerdict("no verdict here")
	req.ErrorIs(err, errors.ErrOpinionUnavailable)
}

func TestTruncateRunes(t *testing.T) {
	require.Equal(t, "สวัส", truncateRunes("สวัสดี", 4))
	require.Equal(t, "abc", truncateRunes("abc", 10))
}
