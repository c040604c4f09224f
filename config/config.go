package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"farmpower-chat/internal/model"
)

const (
	maxRetryAttempts = 5
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM
	Gemini GeminiConfig
	Qwen   QwenConfig // optional fallback
	LLM    LLMConfig

	// Chat
	Session   SessionConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists proxy CIDRs allowed to set X-Forwarded-For.
	// Empty means the socket address is the client address.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds credentials and endpoint for the Gemini API.
type GeminiConfig struct {
	APIKey string
	Model  string
	APIURL string
}

// QwenConfig holds credentials for the OpenAI-compatible Qwen fallback.
// Qwen is used only when APIKey is set.
type QwenConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LLMConfig holds call settings shared by every provider.
type LLMConfig struct {
	Timeout         time.Duration // per conversation turn
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // whole fallback chain
	Temperature     float64
	MaxTokens       int
}

type SessionConfig struct {
	TTL             time.Duration
	SweepInterval   time.Duration
	MaxHistoryTurns int
}

type ChatConfig struct {
	MaxQueryLength  int
	LogQueryContent bool
}

type RateLimitConfig struct {
	Enabled     bool
	Window      time.Duration
	MaxRequests int
	MaxClients  int
}

// Load loads configuration using Viper.
// A .env file is applied to the process environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = strings.ToLower(strings.TrimSpace(v.GetString("environment.name")))
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")

	cfg.Qwen.APIKey = v.GetString("qwen.api_key")
	cfg.Qwen.Model = v.GetString("qwen.model")
	cfg.Qwen.BaseURL = v.GetString("qwen.base_url")

	// LLM
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")

	// Session & chat
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.SweepInterval = v.GetDuration("session.sweep_interval")
	cfg.Session.MaxHistoryTurns = v.GetInt("session.max_history_turns")
	cfg.Chat.MaxQueryLength = v.GetInt("chat.max_query_length")
	cfg.Chat.LogQueryContent = v.GetBool("chat.log_query_content")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.Window = v.GetDuration("rate_limit.window")
	cfg.RateLimit.MaxRequests = v.GetInt("rate_limit.max_requests")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", model.EnvironmentDevelopment)
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", gin.DebugMode)
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Keys without a default still need one registered so AutomaticEnv resolves them
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")

	v.SetDefault("qwen.api_key", "")
	v.SetDefault("qwen.model", "qwen-plus")
	v.SetDefault("qwen.base_url", "https://dashscope-intl.aliyuncs.com/compatible-mode/v1")

	// LLM defaults
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "45s")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1024)

	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.sweep_interval", "30m")
	v.SetDefault("session.max_history_turns", 20)
	v.SetDefault("chat.max_query_length", 2000)
	v.SetDefault("chat.log_query_content", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.window", "15m")
	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.max_clients", 10000)
}

func (c *Config) validate() error {
	switch c.HTTPServer.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("http_server.mode must be one of %s, %s, %s, got %q", gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.HTTPServer.Mode)
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY)")
	}
	if c.LLM.RetryAttempts < 1 || c.LLM.RetryAttempts > maxRetryAttempts {
		return fmt.Errorf("llm.retry_attempts must be between 1 and %d, got %d", maxRetryAttempts, c.LLM.RetryAttempts)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be positive")
	}
	if c.Chat.MaxQueryLength <= 0 {
		return fmt.Errorf("chat.max_query_length must be positive")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive")
		}
		if c.RateLimit.MaxRequests <= 0 {
			return fmt.Errorf("rate_limit.max_requests must be positive")
		}
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment.Name == model.EnvironmentProduction
}
