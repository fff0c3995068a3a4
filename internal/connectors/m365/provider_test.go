package m365

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	cfg := &Config{
		TenantID:     "tenant",
		ClientID:     "client",
		ClientSecret: "secret",
		Webhooks:     map[string]string{"general": "https://example.com/hook"},
	}

	provider := New(cfg, nil)
	require.NotNil(t, provider)

	assert.Equal(t, ProviderName, provider.Name())
	assert.NotNil(t, provider.client)
	assert.NotNil(t, provider.webhook)
	assert.NotNil(t, provider.log)
}
