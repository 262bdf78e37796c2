package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Tavily   TavilyConfig
	Research ResearchConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"600s"`
}

type OpenAIConfig struct {
	Provider       string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey         string `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint    string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model          string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	DeploymentName string `envconfig:"OPENAI_DEPLOYMENT" default:"gpt-4o"`
	APIVersion     string `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
}

type TavilyConfig struct {
	APIKey   string        `envconfig:"TAVILY_API_KEY" required:"true"`
	Endpoint string        `envconfig:"TAVILY_ENDPOINT" default:"https://api.tavily.com"`
	Depth    string        `envconfig:"TAVILY_SEARCH_DEPTH" default:"basic"`
	Timeout  time.Duration `envconfig:"TAVILY_TIMEOUT" default:"30s"`
}

type ResearchConfig struct {
	MaxSteps    int     `envconfig:"RESEARCH_MAX_STEPS" default:"8"`
	MaxResults  int     `envconfig:"RESEARCH_MAX_RESULTS" default:"7"`
	Topic       string  `envconfig:"RESEARCH_TOPIC" default:"finance"`
	OutputFile  string  `envconfig:"RESEARCH_OUTPUT_FILE" default:"investment_research_report.md"`
	Temperature float64 `envconfig:"RESEARCH_TEMPERATURE" default:"0"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}

// ApplyFile overlays run parameters from an optional config file (YAML, TOML,
// or JSON, decided by extension). Credentials always come from the environment
// and cannot be set here.
func (c *Config) ApplyFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if v.IsSet("model") {
		c.OpenAI.Model = v.GetString("model")
	}
	if v.IsSet("max_steps") {
		c.Research.MaxSteps = v.GetInt("max_steps")
	}
	if v.IsSet("max_results") {
		c.Research.MaxResults = v.GetInt("max_results")
	}
	if v.IsSet("topic") {
		c.Research.Topic = v.GetString("topic")
	}
	if v.IsSet("temperature") {
		c.Research.Temperature = v.GetFloat64("temperature")
	}
	if v.IsSet("output_file") {
		c.Research.OutputFile = v.GetString("output_file")
	}
	if v.IsSet("search_depth") {
		c.Tavily.Depth = v.GetString("search_depth")
	}

	slog.Info("applied config file", "path", path)
	return nil
}
