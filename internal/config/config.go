// internal/config/config.go

// Package config resolves cursorbench settings from defaults, a .env file,
// an optional config file, environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mwiater/cursorbench/internal/completion"
	"github.com/mwiater/cursorbench/internal/dataset"
	"github.com/mwiater/cursorbench/internal/prompt"
)

// ErrMissingToken is returned by Validate when no API token is configured.
var ErrMissingToken = errors.New("HF_API_TOKEN environment variable not found")

// EnvPrefix prefixes environment variables for every key except the token.
const EnvPrefix = "CURSORBENCH"

// Config holds the resolved settings.
type Config struct {
	HFAPIToken     string           `mapstructure:"hf_api_token"`
	ModelURL       string           `mapstructure:"model_url"`
	Dataset        DatasetConfig    `mapstructure:"dataset"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	Generation     GenerationConfig `mapstructure:"generation"`
	Prompt         PromptConfig     `mapstructure:"prompt"`
	Output         string           `mapstructure:"output"`
	Seed           uint64           `mapstructure:"seed"`
	Verbose        bool             `mapstructure:"verbose"`
}

// DatasetConfig selects the article dataset.
type DatasetConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Name    string `mapstructure:"name"`
	Config  string `mapstructure:"config"`
	Split   string `mapstructure:"split"`
}

// GenerationConfig holds the sampling settings shared by every request.
type GenerationConfig struct {
	Temperature       float64 `mapstructure:"temperature"`
	TopP              float64 `mapstructure:"top_p"`
	RepetitionPenalty float64 `mapstructure:"repetition_penalty"`
}

// PromptConfig holds the token budgets for each prompt part.
type PromptConfig struct {
	BeforeTokens  int `mapstructure:"before_tokens"`
	AfterTokens   int `mapstructure:"after_tokens"`
	HistoryTokens int `mapstructure:"history_tokens"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	base := completion.DefaultParams()

	v.SetDefault("model_url", completion.DefaultModelURL)
	v.SetDefault("dataset.base_url", dataset.DefaultBaseURL)
	v.SetDefault("dataset.name", dataset.DefaultName)
	v.SetDefault("dataset.config", dataset.DefaultConfig)
	v.SetDefault("dataset.split", dataset.DefaultSplit)
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("generation.temperature", base.Temperature)
	v.SetDefault("generation.top_p", base.TopP)
	v.SetDefault("generation.repetition_penalty", base.RepetitionPenalty)
	v.SetDefault("prompt.before_tokens", prompt.DefaultTokenBudget)
	v.SetDefault("prompt.after_tokens", prompt.DefaultTokenBudget)
	v.SetDefault("prompt.history_tokens", prompt.DefaultTokenBudget)
	v.SetDefault("output", "experiments.csv")
	v.SetDefault("seed", 0)
	v.SetDefault("verbose", false)
}

// Load resolves the configuration held by v. dotenvPath, when the file exists,
// is loaded into the process environment without overriding variables that are
// already set. configFile is optional.
func Load(v *viper.Viper, dotenvPath, configFile string) (Config, error) {
	SetDefaults(v)

	if err := loadDotenv(dotenvPath); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("hf_api_token", "HF_API_TOKEN", EnvPrefix+"_HF_API_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("bind token env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}

// loadDotenv copies KEY=value pairs from path into the environment. A missing
// file is not an error.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	ev := viper.New()
	ev.SetConfigFile(path)
	ev.SetConfigType("env")
	if err := ev.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	for _, key := range ev.AllKeys() {
		name := strings.ToUpper(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, ev.GetString(key)); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// Validate reports settings that make a run impossible.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HFAPIToken) == "" {
		return ErrMissingToken
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	return nil
}

// BaseParams returns the generation template with the configured sampling settings.
func (c Config) BaseParams() completion.Params {
	p := completion.DefaultParams()
	p.Temperature = c.Generation.Temperature
	p.TopP = c.Generation.TopP
	p.RepetitionPenalty = c.Generation.RepetitionPenalty
	return p
}

// PromptBuilder returns a prompt builder using the configured budgets.
func (c Config) PromptBuilder() prompt.Builder {
	return prompt.Builder{
		BeforeTokens:  c.Prompt.BeforeTokens,
		AfterTokens:   c.Prompt.AfterTokens,
		HistoryTokens: c.Prompt.HistoryTokens,
	}
}

// DatasetOptions returns the options for the article source.
func (c Config) DatasetOptions() dataset.HFOptions {
	return dataset.HFOptions{
		BaseURL: c.Dataset.BaseURL,
		Dataset: c.Dataset.Name,
		Config:  c.Dataset.Config,
		Split:   c.Dataset.Split,
		Token:   c.HFAPIToken,
		Timeout: c.RequestTimeout,
	}
}
