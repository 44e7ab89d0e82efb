package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brainrotlabs/brainrot-api/internal/config"
)

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

type GenerateOptions struct {
	PostType      string
	ToxicityLevel int
	Topic         string
	Tones         []string
}

func NewClient(cfg config.Config, log *slog.Logger) *Client {
	timeout := cfg.GenerateTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		model:   cfg.GeminiModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GeneratePost asks the model for a post. Callers treat any error as a cue
// to fall back to the offline template engine.
func (c *Client) GeneratePost(ctx context.Context, opts GenerateOptions) (string, error) {
	prompt := BuildPrompt(opts)

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
	}
	body, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post gemini: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.Error("gemini request failed", "status", resp.StatusCode, "body", truncateBody(rawBody))
		}
		return "", fmt.Errorf("gemini error: status=%d body=%s", resp.StatusCode, truncateBody(rawBody))
	}

	var generateResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(rawBody, &generateResp); err != nil {
		return "", fmt.Errorf("decode gemini response: %w (body=%s)", err, truncateBody(rawBody))
	}

	if len(generateResp.Candidates) == 0 || len(generateResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	text := strings.TrimSpace(generateResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("blank gemini candidate")
	}
	return text, nil
}

// BuildPrompt renders the generation prompt from the request knobs.
func BuildPrompt(opts GenerateOptions) string {
	toxicityDescription := "extremely toxic, unfiltered hell"
	switch {
	case opts.ToxicityLevel <= 3:
		toxicityDescription = "friendly and mild"
	case opts.ToxicityLevel <= 7:
		toxicityDescription = "moderate brainrot, somewhat edgy"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a hilarious Indian tech Twitter shitpost in the style of %q.\n\n", opts.PostType)
	fmt.Fprintf(&b, "The toxicity level is %d/10 (%s).", opts.ToxicityLevel, toxicityDescription)

	if topic := strings.TrimSpace(opts.Topic); topic != "" {
		fmt.Fprintf(&b, "\nThe topic should relate to: %s.", topic)
	}
	if len(opts.Tones) > 0 {
		fmt.Fprintf(&b, "\nThe tone should be: %s.", strings.Join(opts.Tones, ", "))
	}

	b.WriteString(`

This post is for Indian tech Twitter targeting startup bros, meme lords, VCs, GPT fanboys, solopreneurs, and CS undergrads.

Make sure to:
- Keep it under 280 characters (Twitter limit)
- Include relevant tech/startup slang
- Maybe add some emojis where appropriate
- Make it sound authentic to Indian tech Twitter
- Don't include hashtags unless they're part of the joke
- Don't include quotes or "Posted by @username" text`)

	return b.String()
}

func truncateBody(body []byte) string {
	const limit = 512
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
