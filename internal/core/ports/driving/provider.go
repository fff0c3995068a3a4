// Package driving defines the capability contracts the host framework consumes.
package driving

import (
	"context"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// CollaborationProvider is the uniform capability set a vendor adapter exposes.
// Optional string parameters use "" for absent; optional limits use 0 for the
// provider default. Implementations hold no mutable state across calls beyond
// their client handle and are safe for concurrent use.
type CollaborationProvider interface {
	// Name returns the registry key this provider is known by.
	Name() string

	// ListUsers fetches up to limit users (provider default when 0).
	ListUsers(ctx context.Context, limit int) ([]domain.User, error)
	// GetUser fetches a single user by ID or principal name.
	GetUser(ctx context.Context, userID string) (domain.User, error)

	// ListChannels lists channels of a team, or aggregates across discovered
	// teams when teamID is empty.
	ListChannels(ctx context.Context, teamID string) ([]domain.Channel, error)
	// GetMessages fetches up to limit recent messages from a channel.
	// teamID is mandatory.
	GetMessages(ctx context.Context, channelID string, limit int, teamID string) ([]domain.Message, error)
	// PostMessage posts to a named channel via its configured webhook.
	// Returns whether the webhook accepted the post.
	PostMessage(ctx context.Context, channelName, message, title string) (bool, error)

	// ListDocuments lists children of a folder (drive root when folderPath is
	// empty or "root"), resolving a default site when siteID is empty.
	ListDocuments(ctx context.Context, folderPath, siteID string) ([]domain.Document, error)
	// UploadDocument writes content to folderPath/name and returns the created item.
	UploadDocument(ctx context.Context, name string, content []byte, folderPath, siteID string) (domain.Document, error)
	// DownloadDocument returns the raw content of a document, empty when none.
	DownloadDocument(ctx context.Context, documentID, siteID string) ([]byte, error)

	// ListTasks lists tasks of a plan. Empty planID yields an empty result.
	ListTasks(ctx context.Context, planID string) ([]domain.Task, error)

	// SendEmail sends a plain-text email, resolving an implicit sender when
	// fromUser is empty.
	SendEmail(ctx context.Context, to []string, subject, body, fromUser string) (bool, error)
}
