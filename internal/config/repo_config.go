package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/waliwuao/wgit/internal/git"
)

// ReviewMode controls what happens after a commit
type ReviewMode string

const (
	// LocalMerge finishes branches by merging locally
	LocalMerge ReviewMode = "LocalMerge"
	// RemoteReview pushes the branch after each commit so it can be reviewed remotely
	RemoteReview ReviewMode = "RemoteReview"
)

const (
	// DefaultMainBranch is used when no main branch is configured
	DefaultMainBranch = "main"
	// DefaultDevBranch is used when no development branch is configured
	DefaultDevBranch = "develop"

	configFileName = "wgit.json"
)

// WorkflowConfig is the repository's wgit configuration.
// It is loaded once per command and not modified while a workflow runs.
type WorkflowConfig struct {
	Remotes    map[string]string `json:"remotes"`
	ReviewMode ReviewMode        `json:"reviewMode"`
	MainBranch string            `json:"mainBranch"`
	DevBranch  string            `json:"devBranch"`
}

// Default returns the configuration used when none has been saved
func Default() *WorkflowConfig {
	return &WorkflowConfig{
		Remotes:    map[string]string{},
		ReviewMode: LocalMerge,
		MainBranch: DefaultMainBranch,
		DevBranch:  DefaultDevBranch,
	}
}

// Path returns the config file location for the repository. The file lives
// in the common git directory so linked worktrees share one config.
func Path(repoRoot string) string {
	gitDir, err := git.CommonDir(repoRoot)
	if err != nil {
		gitDir = filepath.Join(repoRoot, ".git")
	}
	return filepath.Join(gitDir, configFileName)
}

// Load reads the repository configuration, falling back to defaults when
// the file does not exist. Missing fields are filled with defaults.
func Load(repoRoot string) (*WorkflowConfig, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", Path(repoRoot), err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to disk
func Save(repoRoot string, cfg *WorkflowConfig) error {
	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(Path(repoRoot)), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(Path(repoRoot), configJSON, 0600)
}

func (c *WorkflowConfig) applyDefaults() {
	if c.Remotes == nil {
		c.Remotes = map[string]string{}
	}
	if c.ReviewMode == "" {
		c.ReviewMode = LocalMerge
	}
	if c.MainBranch == "" {
		c.MainBranch = DefaultMainBranch
	}
	if c.DevBranch == "" {
		c.DevBranch = DefaultDevBranch
	}
}

// RemoteNames returns configured remote names in lexical order
func (c *WorkflowConfig) RemoteNames() []string {
	names := make([]string, 0, len(c.Remotes))
	for name := range c.Remotes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetRemote adds or replaces a remote
func (c *WorkflowConfig) SetRemote(name, url string) {
	if c.Remotes == nil {
		c.Remotes = map[string]string{}
	}
	c.Remotes[name] = url
}

// ParseReviewMode converts user input into a ReviewMode
func ParseReviewMode(s string) (ReviewMode, error) {
	switch ReviewMode(s) {
	case LocalMerge, RemoteReview:
		return ReviewMode(s), nil
	default:
		return "", fmt.Errorf("unknown review mode %q (expected %s or %s)", s, LocalMerge, RemoteReview)
	}
}
