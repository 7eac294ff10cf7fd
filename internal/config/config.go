package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultModel          = "gpt-3.5-turbo-instruct"
	DefaultMaxTokens      = 256
	DefaultTemperature    = 0.7
	DefaultRequestTimeout = 60
	DumpJSON              = "json"
	DumpYAML              = "yaml"
	DumpTOML              = "toml"
)

// Branding configures where application name, logo and favicon come from.
// When URL is set the metadata is fetched from it, otherwise the inline
// fields are used.
type Branding struct {
	URL     string `json:"url,omitempty"`
	Name    string `json:"name,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Favicon string `json:"favicon,omitempty"`
}

type Profile struct {
	APIKey         string   `json:"api_key"`
	BaseURL        string   `json:"base_url,omitempty"`
	Model          string   `json:"model"`
	MaxTokens      int      `json:"max_tokens,omitempty"`
	Temperature    float32  `json:"temperature,omitempty"`
	RequestTimeout int      `json:"request_timeout_seconds,omitempty"`
	DumpFormat     string   `json:"dump_format,omitempty"`
	Branding       Branding `json:"branding,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	path           string
}

func DefaultProfile() Profile {
	return Profile{
		Model:          DefaultModel,
		MaxTokens:      DefaultMaxTokens,
		Temperature:    DefaultTemperature,
		RequestTimeout: DefaultRequestTimeout,
		DumpFormat:     DumpJSON,
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the config file at configPath, creating a default one
// when it does not exist.
func LoadConfigFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	config.applyEnvOverrides()
	return config, nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && c.currentProfile.APIKey != ""
}

// Current returns the active profile with defaults filled in
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return DefaultProfile()
	}
	p := *c.currentProfile
	if p.Model == "" {
		p.Model = DefaultModel
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = DefaultRequestTimeout
	}
	switch p.DumpFormat {
	case DumpYAML, DumpTOML:
	default:
		p.DumpFormat = DumpJSON
	}
	return p
}

func (c *Config) GetAPIKey() string {
	return c.Current().APIKey
}

func (c *Config) GetModel() string {
	return c.Current().Model
}

func (c *Config) GetBaseURL() string {
	return c.Current().BaseURL
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Current().RequestTimeout) * time.Second
}

func (c *Config) Path() string {
	return c.path
}

// Dir is the directory holding the config file and the log
func (c *Config) Dir() string {
	return filepath.Dir(c.path)
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORICOMPLETE_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICOMPLETE_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roricomplete", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}

// applyEnvOverrides lets RORICOMPLETE_API_KEY, RORICOMPLETE_BASE_URL and
// RORICOMPLETE_MODEL override the active profile for this run only.
func (c *Config) applyEnvOverrides() {
	v := viper.New()
	v.SetEnvPrefix("RORICOMPLETE")
	for _, key := range []string{"api_key", "base_url", "model"} {
		_ = v.BindEnv(key)
	}

	if key := v.GetString("api_key"); key != "" {
		c.currentProfile.APIKey = key
	}
	if url := v.GetString("base_url"); url != "" {
		c.currentProfile.BaseURL = url
	}
	if model := v.GetString("model"); model != "" {
		c.currentProfile.Model = model
	}
}
