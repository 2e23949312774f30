// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-assistant/internal/prompt"
)

// placeholders stand in for the real input when showing a template.
var placeholders = map[string]string{
	prompt.NameAnalysis: "<paper text>",
	prompt.NamePost:     "<analysis>",
}

var promptsCmd = &cobra.Command{
	Use:       "prompts [analysis|post]",
	Short:     "Print the prompt templates sent to the model",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{prompt.NameAnalysis, prompt.NamePost},
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = []string{prompt.NameAnalysis, prompt.NamePost}
		}
		for i, name := range names {
			text, err := prompt.Render(name, placeholders[name])
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", name, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
