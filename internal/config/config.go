package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all sentinel configuration. It is loaded once at startup and
// passed read-only to the components that need it.
type Config struct {
	Billing     BillingConfig     `mapstructure:"billing"`
	Threshold   float64           `mapstructure:"threshold"`
	Schedule    string            `mapstructure:"schedule"`
	Alerts      AlertsConfig      `mapstructure:"alerts"`
	Healthcheck HealthcheckConfig `mapstructure:"healthcheck"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// BillingConfig defines Cost Explorer access.
type BillingConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// AlertsConfig defines the three notification channels.
type AlertsConfig struct {
	Gotify  GotifyConfig  `mapstructure:"gotify"`
	Discord DiscordConfig `mapstructure:"discord"`
	Ntfy    NtfyConfig    `mapstructure:"ntfy"`
}

// GotifyConfig defines Gotify server settings.
type GotifyConfig struct {
	Host  string `mapstructure:"host"`
	Token string `mapstructure:"token"`
}

// DiscordConfig defines the Discord webhook.
type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// NtfyConfig defines the ntfy topic and credentials.
type NtfyConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Topic   string `mapstructure:"topic"`
	Token   string `mapstructure:"token"`
}

// HealthcheckConfig defines the liveness ping endpoint.
type HealthcheckConfig struct {
	URL string `mapstructure:"url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional YAML file and SENTINEL_*
// environment variables. Every key needs a default registered so viper binds
// its environment variable; required secrets default to empty and are caught
// by Validate.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".sentinel"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("billing.region", "us-east-1")
	v.SetDefault("billing.access_key_id", "")
	v.SetDefault("billing.secret_access_key", "")
	v.SetDefault("threshold", 0.0)
	v.SetDefault("schedule", "@every 1h")
	v.SetDefault("alerts.gotify.host", "")
	v.SetDefault("alerts.gotify.token", "")
	v.SetDefault("alerts.discord.webhook_url", "")
	v.SetDefault("alerts.ntfy.base_url", "https://ntfy.sh")
	v.SetDefault("alerts.ntfy.topic", "")
	v.SetDefault("alerts.ntfy.token", "")
	v.SetDefault("healthcheck.url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("SENTINEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate fails fast on an incomplete configuration, reporting every
// missing required key at once.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"billing.access_key_id", c.Billing.AccessKeyID},
		{"billing.secret_access_key", c.Billing.SecretAccessKey},
		{"alerts.gotify.host", c.Alerts.Gotify.Host},
		{"alerts.gotify.token", c.Alerts.Gotify.Token},
		{"alerts.discord.webhook_url", c.Alerts.Discord.WebhookURL},
		{"alerts.ntfy.topic", c.Alerts.Ntfy.Topic},
		{"alerts.ntfy.token", c.Alerts.Ntfy.Token},
		{"healthcheck.url", c.Healthcheck.URL},
		{"schedule", c.Schedule},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if c.Threshold <= 0 {
		missing = append(missing, "threshold")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
