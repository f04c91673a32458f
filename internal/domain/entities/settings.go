package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	GitBackendGoGit = "gogit"
	GitBackendCLI   = "cli"

	defaultAddress          = ":5000"
	defaultExecTimeout      = 30 * time.Second
	defaultCloneTimeout     = 60 * time.Second
	defaultOperationTimeout = 120 * time.Second
	defaultAuthorName       = "Agent"
	defaultAuthorEmail      = "agent@workbench.local"
	defaultCommitMessage    = "Update"
	defaultChatBaseURL      = "https://api.deepseek.com/v1"
	defaultChatModel        = "deepseek-chat"
	defaultSystemPrompt     = "You are a coding agent. You can write code, create files, and debug. " +
		"When asked to create an app, provide the file structure and contents in a JSON-parsable format: " +
		`{"files": [{"path": "filename", "content": "..."}]}.`
)

// Settings is the full runtime configuration of the gateway.
type Settings struct {
	Server    ServerSettings    `yaml:"server"`
	Workspace WorkspaceSettings `yaml:"workspace"`
	Exec      ExecSettings      `yaml:"exec"`
	Git       GitSettings       `yaml:"git"`
	GitHub    GitHubSettings    `yaml:"github"`
	Chat      ChatSettings      `yaml:"chat"`
}

// ServerSettings configures the HTTP binding.
type ServerSettings struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// WorkspaceSettings locates the directory where repositories are cloned and
// relative file paths are materialized.
type WorkspaceSettings struct {
	Root string `yaml:"root"`
}

// ExecSettings configures the command executor.
type ExecSettings struct {
	Shell   string        `yaml:"shell"`
	Timeout time.Duration `yaml:"timeout"`
}

// GitSettings configures the repository backend and the push identity.
type GitSettings struct {
	Backend          string        `yaml:"backend"` // "gogit" or "cli"
	Binary           string        `yaml:"binary"`  // cli backend only
	CloneTimeout     time.Duration `yaml:"clone_timeout"`
	OperationTimeout time.Duration `yaml:"operation_timeout"`
	AuthorName       string        `yaml:"author_name"`
	AuthorEmail      string        `yaml:"author_email"`
	DefaultMessage   string        `yaml:"default_message"`
}

// GitHubSettings holds the OAuth application and the optional fallback token.
// Secret fields accept inline values, ${ENV_VAR} references or a path to a file.
type GitHubSettings struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
	Token        string `yaml:"token"`
	OAuthBaseURL string `yaml:"oauth_base_url"` // GitHub Enterprise or tests
	APIBaseURL   string `yaml:"api_base_url"`
	OpenerOrigin string `yaml:"opener_origin"`
}

// ChatSettings configures the OpenAI-compatible chat provider.
type ChatSettings struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	Model        string `yaml:"model"`
	SystemPrompt string `yaml:"system_prompt"`
}

// OAuthConfigured reports whether the OAuth authorize step can be offered.
func (s GitHubSettings) OAuthConfigured() bool {
	return s.ClientID != "" && s.RedirectURI != ""
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when nothing is configured.
// No secret has a default: OAuth and chat stay disabled until configured.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Address:        defaultAddress,
			AllowedOrigins: []string{"*"},
		},
		Workspace: WorkspaceSettings{Root: "."},
		Exec: ExecSettings{
			Shell:   defaultShell(),
			Timeout: defaultExecTimeout,
		},
		Git: GitSettings{
			Backend:          GitBackendGoGit,
			Binary:           "git",
			CloneTimeout:     defaultCloneTimeout,
			OperationTimeout: defaultOperationTimeout,
			AuthorName:       defaultAuthorName,
			AuthorEmail:      defaultAuthorEmail,
			DefaultMessage:   defaultCommitMessage,
		},
		GitHub: GitHubSettings{OpenerOrigin: "*"},
		Chat: ChatSettings{
			BaseURL:      defaultChatBaseURL,
			Model:        defaultChatModel,
			SystemPrompt: defaultSystemPrompt,
		},
	}
}

// NewSettingsFromEnvironment loads a .env file when present, then the settings file
// named by WORKBENCH_CONFIG or found in the default locations, then applies
// environment overrides. A missing settings file is not an error.
func NewSettingsFromEnvironment() (*Settings, error) {
	_ = godotenv.Load()

	path := os.Getenv("WORKBENCH_CONFIG")
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No settings file found, using defaults and environment: %v", err)
		}
		path = found
	}

	return NewSettings(path)
}

// NewSettings reads the settings file at path (skipped when path is empty),
// resolves secrets, applies environment overrides and validates the result.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
		logger.Infof("Using config file: %s", path)
	}

	settings.GitHub.ClientID = resolveSecret(settings.GitHub.ClientID)
	settings.GitHub.ClientSecret = resolveSecret(settings.GitHub.ClientSecret)
	settings.GitHub.Token = resolveSecret(settings.GitHub.Token)
	settings.Chat.APIKey = resolveSecret(settings.Chat.APIKey)

	settings.applyEnvironment()

	root, err := filepath.Abs(settings.Workspace.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace root %q: %w", settings.Workspace.Root, err)
	}
	settings.Workspace.Root = root

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a settings file in the standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".workbench.yaml",
		".workbench.yml",
		"workbench.yaml",
		"workbench.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// applyEnvironment lets well-known variables override the file.
func (s *Settings) applyEnvironment() {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if strings.HasPrefix(port, ":") {
			s.Server.Address = port
		} else {
			s.Server.Address = ":" + port
		}
	}

	s.Workspace.Root = firstNonEmpty(os.Getenv("WORKSPACE_ROOT"), s.Workspace.Root)
	s.GitHub.ClientID = firstNonEmpty(os.Getenv("GITHUB_CLIENT_ID"), s.GitHub.ClientID)
	s.GitHub.ClientSecret = firstNonEmpty(os.Getenv("GITHUB_CLIENT_SECRET"), s.GitHub.ClientSecret)
	s.GitHub.RedirectURI = firstNonEmpty(os.Getenv("REDIRECT_URI"), s.GitHub.RedirectURI)
	s.GitHub.Token = firstNonEmpty(os.Getenv("GITHUB_TOKEN_SECRET"), s.GitHub.Token)
	s.Chat.APIKey = firstNonEmpty(os.Getenv("CHAT_API_KEY"), os.Getenv("DEEPSEEK_API_KEY"), s.Chat.APIKey)
	s.Chat.BaseURL = firstNonEmpty(os.Getenv("CHAT_BASE_URL"), s.Chat.BaseURL)
	s.Chat.Model = firstNonEmpty(os.Getenv("CHAT_MODEL"), s.Chat.Model)
}

// validate checks the values that would otherwise fail late, at request time.
func (s *Settings) validate() error {
	if s.Exec.Timeout <= 0 {
		return errors.New("exec.timeout must be positive")
	}
	if s.Git.CloneTimeout <= 0 {
		return errors.New("git.clone_timeout must be positive")
	}
	if s.Git.OperationTimeout <= 0 {
		return errors.New("git.operation_timeout must be positive")
	}
	if s.Git.Backend != GitBackendGoGit && s.Git.Backend != GitBackendCLI {
		return fmt.Errorf("git.backend must be %q or %q, got %q", GitBackendGoGit, GitBackendCLI, s.Git.Backend)
	}
	if s.Git.AuthorName == "" || s.Git.AuthorEmail == "" {
		return errors.New("git.author_name and git.author_email are required")
	}
	if s.GitHub.RedirectURI != "" {
		if _, err := url.ParseRequestURI(s.GitHub.RedirectURI); err != nil {
			return fmt.Errorf("github.redirect_uri is not a valid URL: %w", err)
		}
	}
	return nil
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
