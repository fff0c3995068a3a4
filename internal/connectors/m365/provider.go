// Package m365 adapts Microsoft 365 services (Teams, SharePoint, Outlook,
// Planner) to the CollaborationProvider contract via the Microsoft Graph REST
// API, plus Teams incoming-webhook posting for channel messages.
package m365

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/custodia-labs/collabctl/internal/core/ports/driving"
)

// ProviderName is the registry key this provider is known by.
const ProviderName = "m365"

// Ensure Provider implements the interface.
var _ driving.CollaborationProvider = (*Provider)(nil)

const webhookTimeout = 30 * time.Second

// Provider is the Microsoft 365 collaboration provider. It holds one Graph
// client for its lifetime and no other mutable state, so a single instance is
// safe for concurrent use.
type Provider struct {
	config  *Config
	client  *Client
	webhook *http.Client
	log     *slog.Logger
}

// New creates a provider for the configured tenant. A nil logger falls back
// to slog.Default. No network or credential validation happens here.
func New(cfg *Config, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{
		config:  cfg,
		client:  NewClient(cfg),
		webhook: &http.Client{Timeout: webhookTimeout},
		log:     log,
	}
}

// Name returns the provider registry key.
func (p *Provider) Name() string {
	return ProviderName
}
