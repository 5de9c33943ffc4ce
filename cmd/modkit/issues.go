// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modkit-cli/internal/issue"

	"github.com/spf13/cobra"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Describe known failure modes and how to resolve them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, is := range issue.Values() {
			rendered, err := is.Render("dark")
			if err != nil {
				return fmt.Errorf("rendering issue %d: %w", is.Id(), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(issuesCmd)
}
