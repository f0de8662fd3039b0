package openaiad

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"points_hotel/internal/adapters/observability"
	"points_hotel/internal/domain"
)

// instruction is part of the external contract: it enumerates exactly the
// seven allowed keys, their types, and the single nights-vs-points
// disambiguation rule. The model must return a bare JSON object.
const instruction = `You convert a hotel search query into a JSON filter object.

Allowed keys (all optional, use only these):
- "city": string
- "brand": string
- "state": string
- "hotel": string
- "minPtsNight": number (points per night, lower bound)
- "maxPtsNight": number (points per night, upper bound)
- "maxDistanceKm": number (maximum distance from the airport in km)

Rule: if the query mentions a duration in nights (e.g. "for 5 nights"), do NOT set minPtsNight or maxPtsNight; a night count is not a points threshold.

Respond with a single valid JSON object using only the allowed keys, with no surrounding text, explanation or formatting.`

type Client struct {
	api     *openai.Client
	model   string
	key     string
	rl      *rate.Limiter
	timeout time.Duration
}

// New builds the model client. An empty key is tolerated here so the server
// can still boot; Translate reports the missing credential per request.
func New(key, model, baseURL string, rps int) *Client {
	if model == "" {
		model = "gpt-4o"
	}
	if rps <= 0 {
		rps = 3
	}
	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   model,
		key:     key,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		timeout: 30 * time.Second,
	}
}

// Translate sends the query to the model and returns the raw JSON text it
// produced. A hung upstream is bounded by the client timeout.
func (c *Client) Translate(ctx context.Context, query string) (string, error) {
	if c.key == "" {
		return "", domain.ErrNoCredential
	}
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0,
	})
	if err != nil {
		observability.ObserveExternal("openai", "chat", 0, time.Since(start))
		return "", fmt.Errorf("chat completion: %w", err)
	}
	observability.ObserveExternal("openai", "chat", 200, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return ExtractJSON(resp.Choices[0].Message.Content), nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON tolerates models that wrap the object in a markdown fence or
// stray prose despite the instruction. Returns the input unchanged when no
// object boundary is found, letting the parser report the defect.
func ExtractJSON(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(s[start : end+1])
	}
	return strings.TrimSpace(s)
}
