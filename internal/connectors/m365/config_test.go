package m365

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTenantID, EnvClientID, EnvClientSecret, EnvWebhooks} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTenantID, "tenant-1")
	t.Setenv(EnvClientID, "client-1")
	t.Setenv(EnvClientSecret, "secret-1")
	t.Setenv(EnvWebhooks, "general=https://example.com/hook")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", cfg.TenantID)
	assert.Equal(t, "client-1", cfg.ClientID)
	assert.Equal(t, "secret-1", cfg.ClientSecret)
	assert.Equal(t, map[string]string{"general": "https://example.com/hook"}, cfg.Webhooks)
}

func TestFromEnvMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]string
		missing []string
	}{
		{
			name:    "all missing",
			set:     map[string]string{},
			missing: []string{EnvTenantID, EnvClientID, EnvClientSecret},
		},
		{
			name: "only secret missing",
			set: map[string]string{
				EnvTenantID: "tenant-1",
				EnvClientID: "client-1",
			},
			missing: []string{EnvClientSecret},
		},
		{
			name: "tenant and secret missing",
			set: map[string]string{
				EnvClientID: "client-1",
			},
			missing: []string{EnvTenantID, EnvClientSecret},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.set {
				t.Setenv(key, value)
			}

			_, err := FromEnv()
			require.Error(t, err)

			var cfgErr *domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.missing, cfgErr.Missing)
		})
	}
}

func TestFromEnvNoWebhooks(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTenantID, "tenant-1")
	t.Setenv(EnvClientID, "client-1")
	t.Setenv(EnvClientSecret, "secret-1")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Webhooks)
	assert.Empty(t, cfg.Webhooks)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
tenant_id = "tenant-1"
client_id = "client-1"
client_secret = "secret-1"

[webhooks]
general = "https://example.com/general"
alerts = "https://example.com/alerts"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", cfg.TenantID)
	assert.Equal(t, map[string]string{
		"general": "https://example.com/general",
		"alerts":  "https://example.com/alerts",
	}, cfg.Webhooks)
}

func TestLoadFileMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`tenant_id = "tenant-1"`), 0600))

	_, err := LoadFile(path)
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"client_id", "client_secret"}, cfgErr.Missing)
}

func TestLoadFileNotExist(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadFileNoWebhookTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
tenant_id = "tenant-1"
client_id = "client-1"
client_secret = "secret-1"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Webhooks)
	assert.Empty(t, cfg.Webhooks)
}

func TestParseWebhooks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:  "single entry",
			input: "general=https://example.com/a",
			expected: map[string]string{
				"general": "https://example.com/a",
			},
		},
		{
			name:  "multiple entries",
			input: "general=https://example.com/a,alerts=https://example.com/b",
			expected: map[string]string{
				"general": "https://example.com/a",
				"alerts":  "https://example.com/b",
			},
		},
		{
			name:  "whitespace trimmed",
			input: " general = https://example.com/a , alerts = https://example.com/b ",
			expected: map[string]string{
				"general": "https://example.com/a",
				"alerts":  "https://example.com/b",
			},
		},
		{
			name:  "entry without separator skipped",
			input: "general=https://example.com/a,bogus,alerts=https://example.com/b",
			expected: map[string]string{
				"general": "https://example.com/a",
				"alerts":  "https://example.com/b",
			},
		},
		{
			name:  "duplicate name keeps last",
			input: "general=https://example.com/old,general=https://example.com/new",
			expected: map[string]string{
				"general": "https://example.com/new",
			},
		},
		{
			name:  "url with query keeps everything after first equals",
			input: "general=https://example.com/a?sig=x=y",
			expected: map[string]string{
				"general": "https://example.com/a?sig=x=y",
			},
		},
		{
			name:  "empty name kept",
			input: "=https://example.com/a",
			expected: map[string]string{
				"": "https://example.com/a",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWebhooks(tt.input))
		})
	}
}
