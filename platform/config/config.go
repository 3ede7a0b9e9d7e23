// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// APIKeyConfig provides the static API key used to protect the HTTP surface.
type APIKeyConfig interface {
	GetAPIKey() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetOutreachSubject() string
}

// OutreachConfig provides settings for the batch outreach orchestrator.
type OutreachConfig interface {
	GetOutreachCooldown() time.Duration
	GetOutreachConcurrency() int
}

// AzureOpenAIConfig provides settings for the Azure OpenAI content generator.
type AzureOpenAIConfig interface {
	GetAzureEndpoint() string
	GetAzureDeployment() string
	GetAzureAPIVersion() string
	GetAzureAPIKey() string
	IsContentGeneratorEnabled() bool
}

// SchedulerConfig provides settings for the asynq scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// PrivateLinkConfig provides settings for lead conversation links.
type PrivateLinkConfig interface {
	GetPrivateLinkBase() string
	GetPrivateLinkPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	DatabaseURL         string
	APIKey              string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	EmailEnabled        bool
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	EmailFromName       string
	EmailFromAddress    string
	OutreachSubject     string
	OutreachCooldown    time.Duration
	OutreachConcurrency int
	AzureEndpoint       string
	AzureDeployment     string
	AzureAPIVersion     string
	AzureAPIKey         string
	RedisURL            string
	RedisTLSInsecure    bool
	AsynqQueueName      string
	AsynqConcurrency    int
	PrivateLinkBase     string
	PrivateLinkPath     string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// APIKeyConfig implementation
func (c *Config) GetAPIKey() string { return c.APIKey }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetOutreachSubject() string  { return c.OutreachSubject }

// OutreachConfig implementation
func (c *Config) GetOutreachCooldown() time.Duration { return c.OutreachCooldown }
func (c *Config) GetOutreachConcurrency() int        { return c.OutreachConcurrency }

// AzureOpenAIConfig implementation
func (c *Config) GetAzureEndpoint() string   { return c.AzureEndpoint }
func (c *Config) GetAzureDeployment() string { return c.AzureDeployment }
func (c *Config) GetAzureAPIVersion() string { return c.AzureAPIVersion }
func (c *Config) GetAzureAPIKey() string     { return c.AzureAPIKey }
func (c *Config) IsContentGeneratorEnabled() bool {
	return c.AzureEndpoint != "" && c.AzureDeployment != "" && c.AzureAPIKey != ""
}

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string      { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// PrivateLinkConfig implementation
func (c *Config) GetPrivateLinkBase() string { return c.PrivateLinkBase }
func (c *Config) GetPrivateLinkPath() string { return c.PrivateLinkPath }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")
	smtpHost := getEnv("SMTP_HOST", "")

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		APIKey:              getEnv("API_KEY", ""),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		EmailEnabled:        emailEnabled && smtpHost != "",
		SMTPHost:            smtpHost,
		SMTPPort:            mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:        getEnv("SMTP_USERNAME", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "BizCon"),
		EmailFromAddress:    getEnv("EMAIL_FROM_ADDRESS", ""),
		OutreachSubject:     getEnv("OUTREACH_SUBJECT", "Invitation to Chat with Caze BizConAI"),
		OutreachCooldown:    mustDuration(getEnv("OUTREACH_COOLDOWN", "5h")),
		OutreachConcurrency: mustInt(getEnv("OUTREACH_CONCURRENCY", "4")),
		AzureEndpoint:       getEnv("AZURE_ENDPOINT", ""),
		AzureDeployment:     getEnv("AZURE_DEPLOYMENT", ""),
		AzureAPIVersion:     getEnv("AZURE_API_VERSION", "2024-02-01"),
		AzureAPIKey:         getEnv("AZURE_API_KEY", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisTLSInsecure:    strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:      getEnv("ASYNQ_QUEUE", "outreach"),
		AsynqConcurrency:    mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		PrivateLinkBase:     getEnv("PRIVATE_LINK_BASE", "http://localhost:4200"),
		PrivateLinkPath:     getEnv("PRIVATE_LINK_PATH", "/chat?user="),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.APIKey == "" && !strings.EqualFold(cfg.Env, "development") {
		return nil, fmt.Errorf("API_KEY is required outside development")
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.OutreachCooldown <= 0 {
		return nil, fmt.Errorf("OUTREACH_COOLDOWN must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
