package models

import "time"

// Choice is one candidate returned by the completion backend
type Choice struct {
	Index        int    `json:"index" yaml:"index" toml:"index"`
	Text         string `json:"text" yaml:"text" toml:"text"`
	FinishReason string `json:"finish_reason,omitempty" yaml:"finish_reason,omitempty" toml:"finish_reason,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens" yaml:"prompt_tokens" toml:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens" toml:"completion_tokens"`
	TotalTokens      int `json:"total_tokens" yaml:"total_tokens" toml:"total_tokens"`
}

// Completion is the backend response retained in history
type Completion struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Object  string   `json:"object" yaml:"object" toml:"object"`
	Created int64    `json:"created" yaml:"created" toml:"created"`
	Model   string   `json:"model" yaml:"model" toml:"model"`
	Choices []Choice `json:"choices" yaml:"choices" toml:"choices"`
	Usage   Usage    `json:"usage" yaml:"usage" toml:"usage"`
}

// Text returns the first choice's text, or "" when there are no choices.
func (c Completion) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Text
}

// Interaction is one completed query/response pair. Never mutated after creation.
type Interaction struct {
	ID          string
	Query       string
	Response    Completion
	CompletedAt time.Time
}
