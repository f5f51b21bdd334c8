// Package clients holds thin wrappers around external collaborators.
package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// requestTimeout bounds a single narrative request.
const requestTimeout = 120 * time.Second

// NarrativeClient turns an assembled profile corpus into prose through the
// OpenAI Responses API.
type NarrativeClient struct {
	client *openai.Client
	model  string
}

// NewNarrativeClient builds a client for the given credentials. Both values
// are required; configuration validation happens before any request.
func NewNarrativeClient(apiKey, model string) (*NarrativeClient, error) {
	if apiKey == "" {
		return nil, errors.New("narrative client: missing API key")
	}
	if model == "" {
		return nil, errors.New("narrative client: missing model")
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	slog.Info("[NarrativeClient] OpenAI client initialized", slog.String("model", model))
	return &NarrativeClient{client: &client, model: model}, nil
}

// Summarize sends the prompt and corpus in a single request and returns the
// response text. No continuation requests are made.
func (c *NarrativeClient) Summarize(ctx context.Context, prompt, corpus string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(prompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(corpus, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := c.newWithRetry(ctx, params)
	if err != nil {
		return "", fmt.Errorf("narrative request: %w", err)
	}
	return strings.TrimSpace(resp.OutputText()), nil
}

func (c *NarrativeClient) newWithRetry(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error) {
	waits := []time.Duration{5 * time.Second, 30 * time.Second}

	var lastErr error
	for attempt := 0; attempt <= len(waits); attempt++ {
		resp, err := c.client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == len(waits) || !isRetryable(err) {
			break
		}
		slog.Warn("[NarrativeClient] Request failed, retrying",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
		select {
		case <-time.After(waits[attempt]):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "timeout")
}
