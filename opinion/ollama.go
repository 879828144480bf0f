//go:generate go run go.uber.org/mock/mockgen -source=ollama.go -destination=../mocks/mock_opinion_client.go -package=mocks
package opinion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"tauthy/domain"
	"tauthy/errors"
)

const promptTemplate = `You are judging whether a text was written by an AI or by a human.
Answer with a single JSON object and nothing else, in this exact shape:
{"ai": <percent 0-100>, "human": <percent 0-100>, "reason": "<one short sentence>"}

Text:
"""
%s
"""`

// maxPromptRunes keeps prompts for long documents within a small model's context.
const maxPromptRunes = 6000

// IClient asks a language model for a second opinion on a text.
type IClient interface {
	Query(ctx context.Context, text string) (domain.SecondOpinion, error)
}

// OllamaClient talks to an Ollama-compatible /api/generate endpoint.
type OllamaClient struct {
	baseURL string
	model   string
	http    *http.Client
	now     func() time.Time
}

func NewOllamaClient(baseURL, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type Verdict struct {
	AI     float64 `json:"ai"`
	Human  float64 `json:"human"`
	Reason string  `json:"reason"`
}

func (c *OllamaClient) Query(ctx context.Context, text string) (domain.SecondOpinion, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, truncateRunes(text, maxPromptRunes)),
		Format: "json",
	})
	if err != nil {
		return domain.SecondOpinion{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return domain.SecondOpinion{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SecondOpinion{}, fmt.Errorf("%w: %v", errors.ErrOpinionUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.SecondOpinion{}, fmt.Errorf("%w: read response: %v", errors.ErrOpinionUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.SecondOpinion{}, fmt.Errorf("%w: status %d: %s", errors.ErrOpinionUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var generated generateResponse
	if err := json.Unmarshal(raw, &generated); err != nil {
		return domain.SecondOpinion{}, fmt.Errorf("%w: decode response: %v", errors.ErrOpinionUnavailable, err)
	}
	v, err := ParseVerdict(generated.Response)
	if err != nil {
		return domain.SecondOpinion{}, err
	}
	return domain.SecondOpinion{
		AI:        v.AI,
		Human:     v.Human,
		Reason:    v.Reason,
		Model:     c.model,
		CreatedAt: c.now().UTC(),
	}, nil
}

// ParseVerdict decodes the first JSON object of a model reply. Models often wrap
// the JSON in prose or code fences; anything after the object is ignored.
// Percentages are clamped to [0, 100].
func ParseVerdict(reply string) (Verdict, error) {
	start := strings.Index(reply, "{")
	if start < 0 {
		return Verdict{}, fmt.Errorf("%w: no json object in reply", errors.ErrOpinionUnavailable)
	}
	var v Verdict
	if err := json.NewDecoder(strings.NewReader(reply[start:])).Decode(&v); err != nil {
		return Verdict{}, fmt.Errorf("%w: malformed verdict: %v", errors.ErrOpinionUnavailable, err)
	}
	v.AI = clampPercent(v.AI)
	v.Human = clampPercent(v.Human)
	v.Reason = strings.TrimSpace(v.Reason)
	return v, nil
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
