package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"parshjain/portfolio-assistant/internal/config"
)

// GatewayReason is a coarse classification of a failed model call. It exists
// for operator logs only; every reason resolves through the same fallback.
type GatewayReason string

const (
	ReasonDisabled    GatewayReason = "disabled"
	ReasonTimeout     GatewayReason = "timeout"
	ReasonQuota       GatewayReason = "quota_exceeded"
	ReasonAuth        GatewayReason = "auth_error"
	ReasonEmpty       GatewayReason = "empty_response"
	ReasonUnavailable GatewayReason = "unavailable"
)

type GatewayError struct {
	Reason GatewayReason
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gemini gateway: %s", e.Reason)
	}
	return fmt.Sprintf("gemini gateway: %s: %v", e.Reason, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// GeminiService wraps the generative model behind a bounded prompt and a hard
// deadline. Generation settings stay deliberately tight (short output, low
// temperature, restricted sampling) to keep answers fast and on-topic.
type GeminiService interface {
	Enabled() bool
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

// NewGeminiService creates the gateway. With no usable credential the service
// stays disabled and GenerateAnswer returns immediately without network I/O.
func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	if !cfg.Enabled() {
		return &geminiService{cfg: cfg}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client: client,
		cfg:    cfg,
	}, nil
}

// Enabled implements GeminiService.
func (g *geminiService) Enabled() bool {
	return g.client != nil
}

// GenerateAnswer implements GeminiService. The model call runs in its own
// goroutine and races the configured deadline; when the deadline wins the
// in-flight call is abandoned and the context cancellation tears it down.
func (g *geminiService) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", &GatewayError{Reason: ReasonDisabled}
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	type generation struct {
		text string
		err  error
	}
	done := make(chan generation, 1)

	go func() {
		temperature := g.cfg.Temperature
		topP := g.cfg.TopP
		topK := g.cfg.TopK

		genConfig := &genai.GenerateContentConfig{
			Temperature:     &temperature,
			TopP:            &topP,
			TopK:            &topK,
			MaxOutputTokens: g.cfg.MaxOutputTokens,
		}

		resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), genConfig)
		if err != nil {
			done <- generation{err: err}
			return
		}
		if resp == nil {
			done <- generation{err: fmt.Errorf("no response generated (nil response)")}
			return
		}

		done <- generation{text: resp.Text()}
	}()

	select {
	case <-ctx.Done():
		return "", &GatewayError{Reason: ReasonTimeout, Err: ctx.Err()}
	case gen := <-done:
		if gen.err != nil {
			return "", classifyGatewayError(gen.err)
		}

		text := strings.TrimSpace(gen.text)
		if text == "" {
			return "", &GatewayError{Reason: ReasonEmpty}
		}

		return text, nil
	}
}

func classifyGatewayError(err error) *GatewayError {
	msg := err.Error()

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &GatewayError{Reason: ReasonTimeout, Err: err}
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return &GatewayError{Reason: ReasonQuota, Err: err}
	case strings.Contains(msg, "API_KEY"),
		strings.Contains(msg, "API key"),
		strings.Contains(msg, "PERMISSION_DENIED"):
		return &GatewayError{Reason: ReasonAuth, Err: err}
	default:
		return &GatewayError{Reason: ReasonUnavailable, Err: err}
	}
}
