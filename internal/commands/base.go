// Package commands provides the shared initialization every subcommand runs
// before doing work: config loading and GitHub client construction.
package commands

import (
	"context"
	"os"

	"github.com/alan/wisdom-miner/cmd"
	"github.com/alan/wisdom-miner/internal/github"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile *string
	LoadConfig func(string) (*cmd.Config, error)
	Client     *github.Client
	Context    context.Context
	Config     *cmd.Config
}

// Init loads the configuration. Flag overrides are applied by the caller
// before InitGitHubClient binds the client to the configured repository.
func (bc *BaseCommand) Init() error {
	config, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return err
	}
	bc.Config = config
	bc.Context = context.Background()

	return nil
}

// InitGitHubClient creates the GitHub client bound to the configured
// repository. The token comes from GITHUB_TOKEN; an empty token degrades to
// unauthenticated access rather than failing.
func (bc *BaseCommand) InitGitHubClient() error {
	owner, repo, err := github.SplitRepoSlug(bc.Config.Repo)
	if err != nil {
		return err
	}

	bc.Client = github.NewClient(bc.Context, os.Getenv("GITHUB_TOKEN")).WithRepository(owner, repo)
	return nil
}
