package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/collabctl/internal/core/domain"
	"github.com/custodia-labs/collabctl/internal/core/ports/driving"
	"github.com/custodia-labs/collabctl/internal/core/services"
)

// mockProvider implements driving.CollaborationProvider for testing.
type mockProvider struct {
	users    []domain.User
	channels []domain.Channel
	messages []domain.Message
	docs     []domain.Document
	tasks    []domain.Task
	postOK   bool
	emailOK  bool
	err      error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) ListUsers(_ context.Context, _ int) ([]domain.User, error) {
	return m.users, m.err
}

func (m *mockProvider) GetUser(_ context.Context, userID string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return domain.User{}, &domain.NotFoundError{Resource: "user", ID: userID}
}

func (m *mockProvider) ListChannels(_ context.Context, _ string) ([]domain.Channel, error) {
	return m.channels, m.err
}

func (m *mockProvider) GetMessages(_ context.Context, _ string, _ int, teamID string) ([]domain.Message, error) {
	if teamID == "" {
		return nil, &domain.InvalidArgumentError{Param: "team_id", Reason: "required for channel messages"}
	}
	return m.messages, m.err
}

func (m *mockProvider) PostMessage(_ context.Context, _, _, _ string) (bool, error) {
	return m.postOK, m.err
}

func (m *mockProvider) ListDocuments(_ context.Context, _, _ string) ([]domain.Document, error) {
	return m.docs, m.err
}

func (m *mockProvider) UploadDocument(_ context.Context, name string, _ []byte, folderPath, _ string) (domain.Document, error) {
	if m.err != nil {
		return domain.Document{}, m.err
	}
	path := name
	if folderPath != "" {
		path = folderPath + "/" + name
	}
	return domain.Document{ID: "uploaded-1", Name: name, Path: path}, nil
}

func (m *mockProvider) DownloadDocument(_ context.Context, _, _ string) ([]byte, error) {
	return []byte("downloaded"), m.err
}

func (m *mockProvider) ListTasks(_ context.Context, _ string) ([]domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockProvider) SendEmail(_ context.Context, _ []string, _, _, _ string) (bool, error) {
	return m.emailOK, m.err
}

// withMockProvider installs a registry serving the mock under the default
// provider name, restoring the previous registry afterwards.
func withMockProvider(t *testing.T, provider driving.CollaborationProvider) {
	t.Helper()

	registry := services.NewProviderRegistry()
	registry.Register("m365", func(_ context.Context) (driving.CollaborationProvider, error) {
		if provider == nil {
			return nil, errors.New("no provider")
		}
		return provider, nil
	})

	previous := providerRegistry
	providerRegistry = registry
	t.Cleanup(func() { providerRegistry = previous })
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
