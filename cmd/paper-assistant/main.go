// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-assistant CLI. It reads a
// research paper URL, runs the fetch, extract, analyze, and post pipeline,
// and prints the analysis and LinkedIn post.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-assistant/internal/ui"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks a failure whose message was already printed.
var errReported = errors.New("error already reported")

// rootCmd is the base command for the paper-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-assistant",
	Short: "Turn a research paper into an analysis and a LinkedIn post",
	Long: `paper-assistant downloads a research paper PDF, extracts its text, asks a
language model for a structured analysis, and then turns that analysis into
a LinkedIn post.

arXiv abstract pages (https://arxiv.org/abs/<id>) are rewritten to their PDF
download URL automatically. API keys are read from the llm.api_key setting,
the provider's environment variable (TOGETHER_API_KEY, OPENAI_API_KEY,
ANTHROPIC_API_KEY), or a file in .secrets/.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			ui.DisableColor()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./paper-assistant.yaml or ~/.config/paper-assistant/paper-assistant.yaml)")
	pf.String("provider", "", "model provider: together, openai, or anthropic")
	pf.String("model", "", "model identifier (default depends on provider)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")

	viper.BindPFlag("llm.provider", pf.Lookup("provider"))
	viper.BindPFlag("llm.model", pf.Lookup("model"))
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if err := configure(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
