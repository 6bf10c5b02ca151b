package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/modelprobe/internal/credential"
	"github.com/agentstation/modelprobe/internal/probe"
	"github.com/agentstation/modelprobe/internal/transport"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Probe configuration
	CredentialEnv string
	BaseURL       string
	BetaURL       string
	Surface       string // which surfaces to probe: all, beta, regular
	Timeout       time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.modelprobe.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindAPIKeys()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".modelprobe")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		CredentialEnv: viper.GetString("credential_env"),
		BaseURL:       viper.GetString("base_url"),
		BetaURL:       viper.GetString("beta_url"),
		Surface:       viper.GetString("surface"),
		Timeout:       viper.GetDuration("timeout"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.CredentialEnv == "" {
		config.CredentialEnv = credential.DefaultEnvVar
	}
	if config.BaseURL == "" {
		config.BaseURL = probe.DefaultBaseURL
	}
	if config.BetaURL == "" {
		config.BetaURL = probe.DefaultBetaURL
	}
	if config.Surface == "" {
		config.Surface = "all"
	}
	if config.Timeout == 0 {
		config.Timeout = transport.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// Endpoints returns the endpoints to probe for the configured surface
// selection, in probe order.
func (c *Config) Endpoints() []probe.Endpoint {
	beta := probe.Endpoint{Role: "beta", BaseURL: c.BetaURL}
	regular := probe.Endpoint{Role: "", BaseURL: c.BaseURL}

	switch strings.ToLower(c.Surface) {
	case "beta":
		return []probe.Endpoint{beta}
	case "regular", "stable", "v1":
		return []probe.Endpoint{regular}
	default:
		return []probe.Endpoint{beta, regular}
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindAPIKeys explicitly binds provider API key environment variables to
// Viper so they can also come from .env files.
func bindAPIKeys() {
	apiKeys := []string{
		"DEEPSEEK_API_KEY",
	}

	for _, key := range apiKeys {
		if err := viper.BindEnv(key); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
