package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:postdeck.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Workflow WorkflowConfig `yaml:"workflow" json:"workflow" jsonschema:"description=Workflow automation server connection"`

	Generation GenerationConfig `yaml:"generation" json:"generation" jsonschema:"description=Post generation limits and timing"`

	Schedule struct {
		SyncInterval int `yaml:"sync_interval" json:"sync_interval" jsonschema:"default=15,description=Archive sync interval in minutes"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Background sync configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM provider used for the health probe"`
}

// WorkflowConfig holds the automation server connection settings
type WorkflowConfig struct {
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Base URL of the workflow automation server"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout for workflow API calls"`
	PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=20,minimum=1,description=Posts fetched per queue page"`
}

// GenerationConfig holds daily limit and timing settings
type GenerationConfig struct {
	DailyLimit  int           `yaml:"daily_limit" json:"daily_limit" jsonschema:"default=3,minimum=1,maximum=10,description=Maximum posts generated per day"`
	SettleDelay time.Duration `yaml:"settle_delay" json:"settle_delay" jsonschema:"default=300ms,description=Delay before a decided post is removed from the queue"`
	ReloadDelay time.Duration `yaml:"reload_delay" json:"reload_delay" jsonschema:"default=3s,description=Delay before reloading the queue after generation"`
}

// LLMConfig holds the OpenAI-compatible provider settings. The provider is
// only probed for health, never prompted for content from this service.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty disables the probe)"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0,description=Temperature for probe responses"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=10,description=Maximum tokens in probe response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Enabled reports whether an LLM provider is configured
func (c LLMConfig) Enabled() bool {
	return c.Endpoint != "" || c.APIKey != ""
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:postdeck.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for workflow
	if cfg.Workflow.Timeout == 0 {
		cfg.Workflow.Timeout = 30 * time.Second
	}
	if cfg.Workflow.PageSize == 0 {
		cfg.Workflow.PageSize = 20
	}

	// set defaults for generation
	if cfg.Generation.DailyLimit == 0 {
		cfg.Generation.DailyLimit = 3
	}
	if cfg.Generation.SettleDelay == 0 {
		cfg.Generation.SettleDelay = 300 * time.Millisecond
	}
	if cfg.Generation.ReloadDelay == 0 {
		cfg.Generation.ReloadDelay = 3 * time.Second
	}

	// set defaults for schedule
	if cfg.Schedule.SyncInterval == 0 {
		cfg.Schedule.SyncInterval = 15
	}

	// set defaults for LLM
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 10
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate workflow config
	if cfg.Workflow.URL == "" {
		return fmt.Errorf("workflow.url is required")
	}
	if cfg.Workflow.PageSize < 1 {
		return fmt.Errorf("workflow.page_size must be at least 1")
	}

	// validate generation config
	if cfg.Generation.DailyLimit < 1 || cfg.Generation.DailyLimit > 10 {
		return fmt.Errorf("generation.daily_limit must be between 1 and 10")
	}

	// validate LLM config only when the probe is configured
	if cfg.LLM.Enabled() {
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is configured")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetWorkflowConfig returns workflow server configuration
func (c *Config) GetWorkflowConfig() WorkflowConfig {
	return c.Workflow
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
