// Package config implements the config command for initializing and updating wisdom-miner configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"os/exec"
	"regexp"
	"strings"

	"github.com/alan/wisdom-miner/cmd"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	var (
		repo        string
		user        string
		maxIssues   int
		minLength   int
		output      string
		concurrency int
	)

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Initialize or update the wisdom-miner.yaml configuration file",
		Long: `Config creates or updates a wisdom-miner.yaml file with the repository,
user, and pipeline settings used by the mine command.

When run from a git repository and --repo is not given, the repository is
auto-detected from the git remote origin. Every other unset field keeps its
current or default value.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			overrides := &cmd.Config{
				Repo:             repo,
				User:             user,
				MaxIssues:        maxIssues,
				MinCommentLength: minLength,
				Output:           output,
				Concurrency:      concurrency,
			}
			return runConfigWithGitDetection(*globalConfigFile, overrides, loadConfig, saveConfig)
		},
	}

	cobraCmd.Flags().StringVarP(&repo, "repo", "r", "", "Repository to mine, owner/name (auto-detected from git if available)")
	cobraCmd.Flags().StringVarP(&user, "user", "u", "", "GitHub login whose comments to mine")
	cobraCmd.Flags().IntVarP(&maxIssues, "max", "m", 0, "Maximum number of issues to scan")
	cobraCmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum comment length to keep")
	cobraCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cobraCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent comment fetches")

	return cobraCmd
}

// runConfigWithGitDetection handles config creation with git auto-detection
func runConfigWithGitDetection(configFile string, overrides *cmd.Config, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	config, isUpdate := loadOrCreateConfig(configFile, loadConfig)

	if overrides.Repo == "" && !isUpdate {
		if slug, err := detectGitRepoSlug(); err == nil {
			overrides.Repo = slug
			slog.Info("Auto-detected repository from git remote", "repo", slug)
		}
	}

	applyOverrides(config, overrides)
	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return err
	}

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayConfigSuccess(os.Stdout, configFile, config, isUpdate)
	return nil
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(w io.Writer, configFile string, config *cmd.Config, isUpdate bool) {
	action := "initialized"
	if isUpdate {
		action = "updated"
	}
	fmt.Fprintf(w, "Successfully %s %s with:\n", action, configFile)
	fmt.Fprintf(w, "  Repository: %s\n", config.Repo)
	fmt.Fprintf(w, "  User: %s\n", config.User)
	fmt.Fprintf(w, "  Min comment length: %d\n", config.MinCommentLength)
	fmt.Fprintf(w, "  Max issues: %d\n", config.MaxIssues)
	fmt.Fprintf(w, "  Output: %s\n", config.Output)
	fmt.Fprintf(w, "  Concurrency: %d\n", config.Concurrency)
}

// loadOrCreateConfig loads existing config or creates a new one
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) (*cmd.Config, bool) {
	if config, err := loadConfig(configFile); err == nil {
		// File exists and was loaded successfully
		return config, true
	}

	// File doesn't exist or couldn't be loaded, start fresh
	return &cmd.Config{}, false
}

// applyOverrides updates config with any non-zero provided values
func applyOverrides(config, overrides *cmd.Config) {
	if overrides.Repo != "" {
		config.Repo = overrides.Repo
	}
	if overrides.User != "" {
		config.User = overrides.User
	}
	if overrides.MaxIssues != 0 {
		config.MaxIssues = overrides.MaxIssues
	}
	if overrides.MinCommentLength != 0 {
		config.MinCommentLength = overrides.MinCommentLength
	}
	if overrides.Output != "" {
		config.Output = overrides.Output
	}
	if overrides.Concurrency != 0 {
		config.Concurrency = overrides.Concurrency
	}
}

// detectGitRepoSlug attempts to read the owner/name slug from the git remote
func detectGitRepoSlug() (string, error) {
	if !isGitRepository() {
		return "", fmt.Errorf("not in a git repository")
	}

	owner, repo, err := parseGitRemote()
	if err != nil {
		return "", fmt.Errorf("failed to parse git remote: %w", err)
	}

	return owner + "/" + repo, nil
}

// isGitRepository checks if current directory is in a git repository
func isGitRepository() bool {
	gitCmd := exec.Command("git", "rev-parse", "--git-dir")
	return gitCmd.Run() == nil
}

// parseGitRemote extracts owner and repo from git remote origin
func parseGitRemote() (string, string, error) {
	gitCmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := gitCmd.Output()
	if err != nil {
		return "", "", err
	}

	remoteURL := strings.TrimSpace(string(output))
	return parseRemoteURL(remoteURL)
}

// parseRemoteURL extracts owner and repo from various GitHub URL formats
func parseRemoteURL(remoteURL string) (string, string, error) {
	// Handle SSH format: git@github.com:owner/repo.git
	sshRegex := regexp.MustCompile(`git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	if matches := sshRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	// Handle HTTPS format: https://github.com/owner/repo.git
	httpsRegex := regexp.MustCompile(`https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	if matches := httpsRegex.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	return "", "", fmt.Errorf("unable to parse GitHub remote URL: %s", remoteURL)
}
