// Package insights derives short narratives from retrieved fundamentals
// data. Its only product today is an earnings-call transcript digest.
package insights

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/zeromicro/go-zero/core/logx"
)

const digestSystemPrompt = "You summarize earnings-call transcripts for " +
	"analysts. Produce a short digest: guidance changes, segment performance, " +
	"notable management remarks. Plain text, at most ten sentences."

// Digester produces transcript digests through an OpenAI-compatible endpoint.
type Digester struct {
	cfg    *Config
	client *openai.Client
	retry  retryHandler
}

// Option configures a new Digester.
type Option func(*digesterOptions)

type digesterOptions struct {
	httpClient   *http.Client
	openaiClient *openai.Client
}

// WithHTTPClient replaces the transport used for completion calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *digesterOptions) {
		o.httpClient = hc
	}
}

// WithOpenAIClient injects a pre-built SDK client, mostly for tests.
func WithOpenAIClient(client *openai.Client) Option {
	return func(o *digesterOptions) {
		o.openaiClient = client
	}
}

// NewDigester constructs a Digester from configuration.
func NewDigester(cfg *Config, opts ...Option) (*Digester, error) {
	if cfg == nil {
		return nil, errors.New("insights: nil config")
	}
	var state digesterOptions
	for _, opt := range opts {
		opt(&state)
	}

	client := state.openaiClient
	if client == nil {
		oaOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
		if cfg.BaseURL != "" {
			oaOpts = append(oaOpts, option.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Timeout > 0 {
			oaOpts = append(oaOpts, option.WithRequestTimeout(cfg.Timeout))
		}
		if state.httpClient != nil {
			oaOpts = append(oaOpts, option.WithHTTPClient(state.httpClient))
		}
		clientVal := openai.NewClient(oaOpts...)
		client = &clientVal
	}

	return &Digester{
		cfg:    cfg,
		client: client,
		retry:  retryHandler{maxRetries: cfg.MaxRetries},
	}, nil
}

// Summarize digests one earnings-call transcript.
func (d *Digester) Summarize(ctx context.Context, ticker, callDate, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.New("insights: empty transcript content")
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(d.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(digestSystemPrompt),
			openai.UserMessage(fmt.Sprintf("Company: %s\nCall date: %s\n\n%s", ticker, callDate, content)),
		},
		Temperature: openai.Float(0.2),
	}

	var completion *openai.ChatCompletion
	err := d.retry.do(ctx, func() error {
		resp, callErr := d.client.Chat.Completions.New(ctx, params)
		if callErr != nil {
			logx.WithContext(ctx).Errorf("insights: digest %s %s: %v", ticker, callDate, callErr)
			return callErr
		}
		completion = resp
		return nil
	})
	if err != nil {
		return "", err
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", errors.New("insights: completion returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
