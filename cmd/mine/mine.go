// Package mine implements the mine command, which runs the full comment
// mining pipeline and writes the rendered wisdom report.
package mine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alan/wisdom-miner/cmd"
	"github.com/alan/wisdom-miner/internal/commands"
	"github.com/alan/wisdom-miner/internal/presenter"
	"github.com/alan/wisdom-miner/internal/wisdom"
	"github.com/spf13/cobra"
)

// MineCommand encapsulates the mine command with common functionality
type MineCommand struct {
	commands.BaseCommand
	Repo        string
	User        string
	MaxIssues   int
	MinLength   int
	Output      string
	Concurrency int
}

// NewMineCmd creates and returns the mine command
func NewMineCmd(globalConfigFile *string, quiet *bool, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	mineCmd := &MineCommand{}

	command := &cobra.Command{
		Use:   "mine",
		Short: "Mine a user's review comments into a categorized wisdom report",
		Long: `Mine searches a GitHub repository for issues and pull requests a user
commented on, collects their discussion and inline review comments, scores
them by reactions, explanatory language and length, and writes a Markdown
report grouped by topic.

Set GITHUB_TOKEN to authenticate; without it the GitHub API applies much
lower rate limits.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			mineCmd.ConfigFile = globalConfigFile
			mineCmd.LoadConfig = loadConfig
			if err := mineCmd.Init(); err != nil {
				return err
			}

			mineCmd.applyFlagOverrides(cobraCmd)
			if err := mineCmd.Config.Validate(); err != nil {
				return err
			}

			if err := mineCmd.InitGitHubClient(); err != nil {
				return err
			}

			p := presenter.New()
			p.SetQuiet(*quiet)
			return runMine(mineCmd.Context, mineCmd.Client, mineCmd.Config, p, time.Now)
		},
	}

	addMineFlags(command, mineCmd)

	return command
}

// addMineFlags binds the mine flags to the command fields
func addMineFlags(command *cobra.Command, mineCmd *MineCommand) {
	command.Flags().StringVarP(&mineCmd.Repo, "repo", "r", "", "Repository to mine (owner/name)")
	command.Flags().StringVarP(&mineCmd.User, "user", "u", "", "GitHub login whose comments to mine")
	command.Flags().IntVarP(&mineCmd.MaxIssues, "max", "m", 0, "Maximum number of issues to scan")
	command.Flags().IntVar(&mineCmd.MinLength, "min-length", 0, "Minimum comment length to keep")
	command.Flags().StringVarP(&mineCmd.Output, "output", "o", "", "Output file path")
	command.Flags().IntVar(&mineCmd.Concurrency, "concurrency", 0, "Concurrent comment fetches (1 = sequential)")
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
// Flags the user did not touch leave the config (and its defaults) alone.
func (mc *MineCommand) applyFlagOverrides(cobraCmd *cobra.Command) {
	flags := cobraCmd.Flags()
	if flags.Changed("repo") {
		mc.Config.Repo = mc.Repo
	}
	if flags.Changed("user") {
		mc.Config.User = mc.User
	}
	if flags.Changed("max") {
		mc.Config.MaxIssues = mc.MaxIssues
	}
	if flags.Changed("min-length") {
		mc.Config.MinCommentLength = mc.MinLength
	}
	if flags.Changed("output") {
		mc.Config.Output = mc.Output
	}
	if flags.Changed("concurrency") {
		mc.Config.Concurrency = mc.Concurrency
	}
}

// runMine executes the pipeline against the given source and writes the
// rendered report to the configured output path.
func runMine(ctx context.Context, source wisdom.Source, config *cmd.Config, p *presenter.Presenter, now func() time.Time) error {
	p.Info(fmt.Sprintf("Mining %s for comments by @%s...", config.Repo, config.User))

	pipeline := &wisdom.Pipeline{
		Source:      source,
		Repo:        config.Repo,
		Author:      config.User,
		MaxIssues:   config.MaxIssues,
		MinLength:   config.MinCommentLength,
		Concurrency: config.Concurrency,
		Progress: func(done, total int) {
			p.Progressf("Collected comments from %d/%d issues", done, total)
		},
	}

	report, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	document := wisdom.RenderMarkdown(*report, now())
	if err := os.WriteFile(config.Output, []byte(document), 0644); err != nil { //nolint:gosec // Output path is from command-line flag
		return fmt.Errorf("failed to write report: %w", err)
	}

	p.Success(fmt.Sprintf("Kept %d of %d comments in %d categories: %s",
		report.CommentsKept, report.CommentsFetched, len(report.Buckets), config.Output))
	return nil
}
