// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/alan/wisdom-miner/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version information of wisdom-miner in JSON format.`,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			json, err := version.Get().JSON()
			if err != nil {
				return fmt.Errorf("failed to format version info: %w", err)
			}
			fmt.Fprintln(cobraCmd.OutOrStdout(), json)
			return nil
		},
	}
}
