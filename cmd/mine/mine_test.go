package mine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alan/wisdom-miner/cmd"
	"github.com/alan/wisdom-miner/internal/github"
	"github.com/alan/wisdom-miner/internal/presenter"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	issues    []github.Issue
	searchErr error
	comments  map[int][]github.Comment
}

func (f *fakeSource) SearchIssuesByCommenter(_ context.Context, _ string, max int) ([]github.Issue, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	issues := f.issues
	if max > 0 && len(issues) > max {
		issues = issues[:max]
	}
	return issues, nil
}

func (f *fakeSource) IssueCommentsByAuthor(_ context.Context, issueNumber int, _ string) ([]github.Comment, error) {
	return f.comments[issueNumber], nil
}

func (f *fakeSource) ReviewCommentsByAuthor(_ context.Context, _ int, _ string) ([]github.Comment, error) {
	return nil, nil
}

func testConfig(output string) *cmd.Config {
	cfg := cmd.DefaultConfig()
	cfg.Repo = "elixir-lang/elixir"
	cfg.User = "josevalim"
	cfg.MinCommentLength = 50
	cfg.Output = output
	return cfg
}

func TestRunMine_WritesReport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wisdom.md")
	source := &fakeSource{
		issues: []github.Issue{
			{Number: 1, Title: "GenServer timeout handling", URL: "https://github.com/elixir-lang/elixir/issues/1"},
		},
		comments: map[int][]github.Comment{
			1: {{
				Body:      "Prefer handle_continue because the supervisor restarts " + strings.Repeat("x", 60),
				Author:    "josevalim",
				CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
				Reactions: 3,
			}},
		},
	}

	var out bytes.Buffer
	p := presenter.NewWithWriters(&out, &bytes.Buffer{})

	now := func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	err := runMine(context.Background(), source, testConfig(output), p, now)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Wisdom from @josevalim")
	assert.Contains(t, content, "**Generated:** 2024-01-02")
	assert.Contains(t, content, "GenServer timeout handling")
	assert.Contains(t, content, "OTP & Processes")

	assert.Contains(t, out.String(), "Mining elixir-lang/elixir for comments by @josevalim")
	assert.Contains(t, out.String(), "Kept 1 of 1 comments in 1 categories")
}

func TestRunMine_DiscoveryFailureAborts(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wisdom.md")
	source := &fakeSource{searchErr: errors.New("API rate limit exceeded")}

	p := presenter.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	err := runMine(context.Background(), source, testConfig(output), p, time.Now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API rate limit exceeded")
	assert.NoFileExists(t, output)
}

func TestRunMine_WriteFailureIsFatal(t *testing.T) {
	output := filepath.Join(t.TempDir(), "missing-dir", "wisdom.md")
	source := &fakeSource{}

	p := presenter.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	err := runMine(context.Background(), source, testConfig(output), p, time.Now)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}

func TestRunMine_EmptyDiscoveryStillWritesReport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wisdom.md")
	source := &fakeSource{}

	p := presenter.NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, runMine(context.Background(), source, testConfig(output), p, time.Now))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No comments cleared the length threshold.")
}

func TestRunMine_ProgressMessages(t *testing.T) {
	output := filepath.Join(t.TempDir(), "wisdom.md")
	source := &fakeSource{comments: map[int][]github.Comment{}}
	for i := 1; i <= 25; i++ {
		source.issues = append(source.issues, github.Issue{Number: i, Title: fmt.Sprintf("issue %d", i)})
	}

	var out bytes.Buffer
	p := presenter.NewWithWriters(&out, &bytes.Buffer{})
	require.NoError(t, runMine(context.Background(), source, testConfig(output), p, time.Now))

	assert.Contains(t, out.String(), "Collected comments from 10/25 issues")
	assert.Contains(t, out.String(), "Collected comments from 20/25 issues")
	assert.Contains(t, out.String(), "Collected comments from 25/25 issues")
}

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(*cmd.Config)
	}{
		{
			name: "no flags leave config untouched",
			args: nil,
			want: func(*cmd.Config) {},
		},
		{
			name: "all flags override",
			args: []string{
				"--repo", "phoenixframework/phoenix", "--user", "chrismccord",
				"--max", "50", "--min-length", "80", "--output", "out.md", "--concurrency", "4",
			},
			want: func(c *cmd.Config) {
				c.Repo = "phoenixframework/phoenix"
				c.User = "chrismccord"
				c.MaxIssues = 50
				c.MinCommentLength = 80
				c.Output = "out.md"
				c.Concurrency = 4
			},
		},
		{
			name: "explicit zero min-length overrides the default",
			args: []string{"--min-length", "0"},
			want: func(c *cmd.Config) {
				c.MinCommentLength = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mineCmd := &MineCommand{}
			mineCmd.Config = cmd.DefaultConfig()

			cobraCmd := &cobra.Command{Use: "mine", Run: func(*cobra.Command, []string) {}}
			addMineFlags(cobraCmd, mineCmd)
			require.NoError(t, cobraCmd.ParseFlags(tt.args))

			mineCmd.applyFlagOverrides(cobraCmd)

			want := cmd.DefaultConfig()
			tt.want(want)
			assert.Equal(t, want, mineCmd.Config)
		})
	}
}
