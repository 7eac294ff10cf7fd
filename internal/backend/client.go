package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriComplete/internal/config"
	"github.com/Rorical/RoriComplete/internal/models"
)

var (
	// ErrEmptyChoices is returned when the backend answers without any choice
	ErrEmptyChoices = errors.New("completion response has no choices")
	// ErrNotConfigured is returned when the active profile has no API key
	ErrNotConfigured = errors.New("OpenAI integration not available")
)

// Client is the completion backend as seen by the core service
type Client interface {
	Info(ctx context.Context) (models.BackendInfo, error)
	Complete(ctx context.Context, prompt string) (models.Completion, error)
}

type OpenAIClient struct {
	client      *openai.Client
	profile     config.Profile
	profileName string
}

// NewOpenAIClient builds a client for the active profile. The returned
// client is usable even when the profile is not configured; every call then
// fails with ErrNotConfigured.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	profile := cfg.Current()
	var client *openai.Client

	// Only create OpenAI client if config is valid
	if cfg.IsValid() {
		clientConfig := openai.DefaultConfig(profile.APIKey)
		if profile.BaseURL != "" {
			clientConfig.BaseURL = profile.BaseURL
		}
		client = openai.NewClientWithConfig(clientConfig)
	}

	return &OpenAIClient{
		client:      client,
		profile:     profile,
		profileName: cfg.ActiveProfile,
	}
}

func (c *OpenAIClient) Ready() bool {
	return c.client != nil
}

// Info describes the backend for the settings panel. The static part of the
// record is always returned; err reports a failed model lookup.
func (c *OpenAIClient) Info(ctx context.Context) (models.BackendInfo, error) {
	kind := "openai"
	baseURL := c.profile.BaseURL
	if baseURL != "" {
		kind = "openai-compatible"
	} else {
		baseURL = openai.DefaultConfig("").BaseURL
	}

	info := models.BackendInfo{
		{Key: "type", Value: kind},
		{Key: "profile", Value: c.profileName},
		{Key: "base_url", Value: baseURL},
		{Key: "model", Value: c.profile.Model},
		{Key: "max_tokens", Value: strconv.Itoa(c.profile.MaxTokens)},
		{Key: "temperature", Value: strconv.FormatFloat(float64(c.profile.Temperature), 'f', -1, 32)},
	}

	if c.client == nil {
		return info, ErrNotConfigured
	}

	model, err := c.client.GetModel(ctx, c.profile.Model)
	if err != nil {
		return info, fmt.Errorf("model lookup failed: %w", err)
	}
	info = append(info, models.InfoField{Key: "owned_by", Value: model.OwnedBy})
	return info, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (models.Completion, error) {
	if c.client == nil {
		return models.Completion{}, ErrNotConfigured
	}

	req := openai.CompletionRequest{
		Model:       c.profile.Model,
		Prompt:      prompt,
		MaxTokens:   c.profile.MaxTokens,
		Temperature: c.profile.Temperature,
	}

	resp, err := c.client.CreateCompletion(ctx, req)
	if err != nil {
		return models.Completion{}, fmt.Errorf("OpenAI API error: %w", err)
	}

	completion, err := toCompletion(resp)
	if err != nil {
		return models.Completion{}, err
	}
	if len(completion.Choices) == 0 {
		return models.Completion{}, ErrEmptyChoices
	}
	return completion, nil
}

// toCompletion maps the wire response onto models.Completion; both share the
// OpenAI JSON field names.
func toCompletion(resp openai.CompletionResponse) (models.Completion, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to encode response: %w", err)
	}
	var completion models.Completion
	if err := json.Unmarshal(data, &completion); err != nil {
		return models.Completion{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return completion, nil
}
