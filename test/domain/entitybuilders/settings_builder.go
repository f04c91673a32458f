//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
// It starts from entities.DefaultSettings with a throwaway workspace root.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings *entities.Settings
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultTestSettings(),
	}
}

func defaultTestSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Workspace.Root = "/tmp/workbench-test"
	return settings
}

// WithWorkspaceRoot sets the workspace root.
func (b *SettingsBuilder) WithWorkspaceRoot(root string) *SettingsBuilder {
	b.settings.Workspace.Root = root
	return b
}

// WithExecTimeout sets the command timeout.
func (b *SettingsBuilder) WithExecTimeout(timeout time.Duration) *SettingsBuilder {
	b.settings.Exec.Timeout = timeout
	return b
}

// WithFallbackToken sets the statically configured GitHub token.
func (b *SettingsBuilder) WithFallbackToken(token string) *SettingsBuilder {
	b.settings.GitHub.Token = token
	return b
}

// WithOAuth sets the OAuth application settings.
func (b *SettingsBuilder) WithOAuth(clientID, clientSecret, redirectURI string) *SettingsBuilder {
	b.settings.GitHub.ClientID = clientID
	b.settings.GitHub.ClientSecret = clientSecret
	b.settings.GitHub.RedirectURI = redirectURI
	return b
}

// WithGitHubURLs points OAuth and REST calls at baseURL (typically an httptest server).
func (b *SettingsBuilder) WithGitHubURLs(baseURL string) *SettingsBuilder {
	b.settings.GitHub.OAuthBaseURL = baseURL
	b.settings.GitHub.APIBaseURL = baseURL
	return b
}

// WithChat sets the chat provider endpoint and key.
func (b *SettingsBuilder) WithChat(baseURL, apiKey string) *SettingsBuilder {
	b.settings.Chat.BaseURL = baseURL
	b.settings.Chat.APIKey = apiKey
	return b
}

// WithSystemPrompt sets the chat system prompt.
func (b *SettingsBuilder) WithSystemPrompt(prompt string) *SettingsBuilder {
	b.settings.Chat.SystemPrompt = prompt
	return b
}

// WithDefaultMessage sets the commit message used when push gets none.
func (b *SettingsBuilder) WithDefaultMessage(message string) *SettingsBuilder {
	b.settings.Git.DefaultMessage = message
	return b
}

// WithAllowedOrigins sets the CORS origins.
func (b *SettingsBuilder) WithAllowedOrigins(origins ...string) *SettingsBuilder {
	b.settings.Server.AllowedOrigins = origins
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings returns a copy of the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := *b.settings
	settings.Server.AllowedOrigins = append([]string(nil), b.settings.Server.AllowedOrigins...)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultTestSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.BuildSettings(),
	}
}
