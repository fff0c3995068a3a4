package m365

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// Environment variable names for the required credentials and the webhook table.
const (
	EnvTenantID     = "M365_TENANT_ID"
	EnvClientID     = "M365_CLIENT_ID"
	EnvClientSecret = "M365_CLIENT_SECRET"
	EnvWebhooks     = "M365_TEAMS_WEBHOOKS"
)

// Config holds the connection parameters for a Microsoft 365 tenant.
// No credential validation happens at load time; that is deferred to the
// first real API call.
type Config struct {
	TenantID     string `toml:"tenant_id" validate:"required"`
	ClientID     string `toml:"client_id" validate:"required"`
	ClientSecret string `toml:"client_secret" validate:"required"`
	// Webhooks maps channel names to Teams incoming-webhook URLs.
	Webhooks map[string]string `toml:"webhooks"`
}

// envSpec is the raw environment shape before webhook parsing.
type envSpec struct {
	TenantID     string `envconfig:"M365_TENANT_ID"`
	ClientID     string `envconfig:"M365_CLIENT_ID"`
	ClientSecret string `envconfig:"M365_CLIENT_SECRET"`
	Webhooks     string `envconfig:"M365_TEAMS_WEBHOOKS"`
}

// envKeyNames maps Config fields to the environment variables they come from,
// so configuration errors name the keys the operator actually sets.
var envKeyNames = map[string]string{
	"TenantID":     EnvTenantID,
	"ClientID":     EnvClientID,
	"ClientSecret": EnvClientSecret,
}

// tomlKeyNames maps Config fields to their keys in a TOML config file.
var tomlKeyNames = map[string]string{
	"TenantID":     "tenant_id",
	"ClientID":     "client_id",
	"ClientSecret": "client_secret",
}

var validate = validator.New()

// FromEnv builds a Config from process environment variables.
// Returns a *domain.ConfigurationError naming every missing required key.
func FromEnv() (*Config, error) {
	var raw envSpec
	if err := envconfig.Process("", &raw); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := &Config{
		TenantID:     raw.TenantID,
		ClientID:     raw.ClientID,
		ClientSecret: raw.ClientSecret,
		Webhooks:     ParseWebhooks(raw.Webhooks),
	}

	if err := cfg.checkRequired(envKeyNames); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile builds a Config from a TOML file with the same required-key rules
// as FromEnv. Webhooks are a native [webhooks] table.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Webhooks == nil {
		cfg.Webhooks = make(map[string]string)
	}

	if err := cfg.checkRequired(tomlKeyNames); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkRequired validates the required fields, translating field names through
// keyNames so the error speaks the caller's configuration vocabulary.
func (c *Config) checkRequired(keyNames map[string]string) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate configuration: %w", err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if mapped, ok := keyNames[name]; ok {
			name = mapped
		}
		missing = append(missing, name)
	}
	return &domain.ConfigurationError{Missing: missing}
}

// ParseWebhooks parses a delimited "name1=url1,name2=url2" list into a mapping.
// Entries without "=" are skipped, names and URLs are trimmed, and the last
// occurrence of a duplicate name wins.
func ParseWebhooks(s string) map[string]string {
	webhooks := make(map[string]string)
	if s == "" {
		return webhooks
	}

	for _, pair := range strings.Split(s, ",") {
		name, url, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		webhooks[strings.TrimSpace(name)] = strings.TrimSpace(url)
	}
	return webhooks
}
