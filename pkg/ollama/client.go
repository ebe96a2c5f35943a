// Package ollama is a client for a local Ollama text-generation service. It
// synthesizes shell commands from natural language security requests,
// interprets command output, and streams long-form explanations.
package ollama

import (
	"context"
	"errors"
	"strings"

	"github.com/strikelab/commandstrike/pkg/history"
	"github.com/strikelab/commandstrike/pkg/modeladapter"
	"github.com/strikelab/commandstrike/pkg/prompts"
	"github.com/strikelab/commandstrike/pkg/sanitize"
	"go.uber.org/zap"
)

const generatePath = "/api/generate"

// Client talks to an Ollama service. It is not safe to mutate the model or
// temperature while calls are in flight.
type Client struct {
	modeladapter.ModelAdapter

	// Log receives diagnostics for degraded paths (skipped stream lines,
	// advisory validation failures). Nil disables them.
	Log *zap.Logger

	cfg Config
}

// New creates a Client for the given configuration. Zero-valued Config
// fields fall back to the documented defaults.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()

	c := &Client{cfg: cfg}
	c.ModelAdapter = modeladapter.New(cfg.BaseURL, modeladapter.Auth{}, nil)

	return c
}

// Model returns the model identifier in use.
func (c *Client) Model() string { return c.cfg.Model }

// SetModel replaces the model identifier without recreating the client.
func (c *Client) SetModel(model string) {
	c.cfg.Model = model
	c.logger().Info("model set", zap.String("model", model))
}

// Temperature returns the sampling temperature in use.
func (c *Client) Temperature() float64 { return c.cfg.Temperature }

// SetTemperature replaces the sampling temperature, clamped into [0.0, 1.0].
func (c *Client) SetTemperature(temperature float64) {
	c.cfg.Temperature = min(max(temperature, 0.0), 1.0)
	c.logger().Debug("temperature set", zap.Float64("temperature", c.cfg.Temperature))
}

func (c *Client) logger() *zap.Logger {
	if c.Log != nil {
		return c.Log
	}

	return zap.NewNop()
}

// Generate sends a non-streaming generation request and returns the complete
// response text with surrounding whitespace trimmed. The call is bounded by
// the configured timeout; on expiry a *modeladapter.TimeoutError is
// returned. Failures are never retried.
func (c *Client) Generate(ctx context.Context, prompt, system string) (string, error) {
	req := c.generateRequest(prompt, system, false)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var frame generateFrame
	if err := c.PostJSON(ctx, generatePath, req, &frame); err != nil {
		var te *modeladapter.TimeoutError
		if errors.As(err, &te) {
			te.After = c.cfg.Timeout
		}

		return "", err
	}

	return strings.TrimSpace(frame.Response), nil
}

// GenerateCommand synthesizes a single shell command for a natural language
// security request, using bounded context from prior interactions, and
// sanitizes the result into a bare command string.
func (c *Client) GenerateCommand(ctx context.Context, input string, items []history.Item) (string, error) {
	p := prompts.GenerateCommand(input, items)

	raw, err := c.Generate(ctx, p.User, p.System)
	if err != nil {
		return "", err
	}

	command := sanitize.Command(raw)
	c.logger().Info("generated command", zap.String("command", command))

	return command, nil
}

// InterpretResult analyzes command output for security-relevant findings,
// using the most recent history item as command context.
func (c *Client) InterpretResult(ctx context.Context, result string, items []history.Item) (string, error) {
	p := prompts.InterpretResult(result, items)

	return c.Generate(ctx, p.User, p.System)
}

// ExplainCommand streams a long-form explanation of a command.
func (c *Client) ExplainCommand(ctx context.Context, command string) (*StreamSession, error) {
	p := prompts.ExplainCommand(command)

	return c.Stream(ctx, p.User, p.System)
}

func (c *Client) generateRequest(prompt, system string, stream bool) generateRequest {
	topP := defaultTopP
	maxTokens := c.cfg.MaxTokens

	return generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		System: system,
		Stream: &stream,
		Options: &generateOptions{
			Temperature: c.cfg.Temperature,
			TopP:        &topP,
			MaxTokens:   &maxTokens,
		},
	}
}

// --- wire types ---

const defaultTopP = 0.9

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	System  string           `json:"system,omitempty"`
	Stream  *bool            `json:"stream,omitempty"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64  `json:"temperature"`
	TopP        *float64 `json:"top_p,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// generateFrame is one decoded unit of a generation response. A
// non-streaming call returns exactly one frame carrying the full text; a
// streaming call returns one frame per line, the last marked done.
type generateFrame struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}
