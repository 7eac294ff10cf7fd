package branding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Rorical/RoriComplete/internal/config"
	"github.com/Rorical/RoriComplete/internal/models"
)

// Provider supplies the application branding
type Provider interface {
	ApplicationInfo(ctx context.Context) (models.ApplicationInfo, error)
}

// NewProvider picks the HTTP provider when the profile names a branding URL
// and the static profile provider otherwise.
func NewProvider(b config.Branding) Provider {
	if b.URL != "" {
		return NewHTTPProvider(b.URL)
	}
	return StaticProvider{Branding: b}
}

// StaticProvider serves the branding block of the active profile
type StaticProvider struct {
	Branding config.Branding
}

func (p StaticProvider) ApplicationInfo(ctx context.Context) (models.ApplicationInfo, error) {
	if err := ctx.Err(); err != nil {
		return models.ApplicationInfo{}, err
	}
	return models.ApplicationInfo{
		Name:    p.Branding.Name,
		Logo:    models.OptionalOf(p.Branding.Logo),
		Favicon: models.OptionalOf(p.Branding.Favicon),
	}, nil
}

// infoPayload is the JSON document served by a branding endpoint
type infoPayload struct {
	Name            string  `json:"name"`
	LogoOptional    *string `json:"logoOptional"`
	FaviconOptional *string `json:"faviconOptional"`
}

type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProvider) ApplicationInfo(ctx context.Context) (models.ApplicationInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return models.ApplicationInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return models.ApplicationInfo{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ApplicationInfo{}, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, p.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.ApplicationInfo{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload infoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.ApplicationInfo{}, fmt.Errorf("invalid info payload: %w", err)
	}

	info := models.ApplicationInfo{Name: payload.Name}
	if payload.LogoOptional != nil {
		info.Logo = models.OptionalOf(*payload.LogoOptional)
	}
	if payload.FaviconOptional != nil {
		info.Favicon = models.OptionalOf(*payload.FaviconOptional)
	}
	return info, nil
}

// Fetch runs the provider and falls back to the empty record on failure.
// The error is returned for logging only.
func Fetch(ctx context.Context, p Provider) (models.ApplicationInfo, error) {
	info, err := p.ApplicationInfo(ctx)
	if err != nil {
		return models.ApplicationInfo{}, err
	}
	return info, nil
}
