// Package insights generates short narrative commentary for each dashboard
// section by sending precomputed report tables to an OpenAI-compatible chat
// completion endpoint.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"retail-dashboard/internal/config"
	"retail-dashboard/internal/errors"
)

const systemPrompt = "You are an expert in customer and demand analytics for retail businesses. Answer in concise bullet points only."

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.InsightsConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one user prompt and returns the model's reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.UpstreamWrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.UpstreamWrap(err, "read completion response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.UpstreamWrap(
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 200)),
			"completion endpoint rejected request")
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.UpstreamWrap(err, "decode completion response")
	}
	if parsed.Error != nil {
		return "", errors.UpstreamWrap(fmt.Errorf("%s", parsed.Error.Message), "completion endpoint returned error")
	}
	if len(parsed.Choices) == 0 {
		return "", errors.UpstreamWrap(fmt.Errorf("no choices in response"), "empty completion")
	}

	c.logger.Debug("completion finished",
		"model", c.model,
		"duration", time.Since(start))
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
