// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-assistant/internal/acquire"
	"github.com/pdiddy/paper-assistant/internal/convert"
	"github.com/pdiddy/paper-assistant/internal/httputil"
	"github.com/pdiddy/paper-assistant/internal/llm"
	"github.com/pdiddy/paper-assistant/internal/logging"
	"github.com/pdiddy/paper-assistant/internal/pipeline"
	"github.com/pdiddy/paper-assistant/internal/secrets"
	"github.com/pdiddy/paper-assistant/internal/ui"
	"github.com/pdiddy/paper-assistant/pkg/types"
)

const banner = "📚 LinkedIn Research Paper Assistant"

var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Analyze a paper and draft a LinkedIn post about it",
	Long: `Run downloads the PDF at url, extracts its text, generates a structured
analysis, and turns the analysis into a LinkedIn post. When url is omitted it
is read from standard input.

Nothing is printed to standard output unless both model calls succeed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("format", "f", "", "output format: text, yaml, or json (default text)")
	runCmd.Flags().Duration("timeout", 0, "HTTP timeout for the PDF download (default 60s)")
	runCmd.Flags().Bool("no-validate", false, "skip structural PDF validation before text extraction")

	viper.BindPFlag("output.format", runCmd.Flags().Lookup("format"))
	viper.BindPFlag("http.timeout", runCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if noValidate, _ := cmd.Flags().GetBool("no-validate"); noValidate {
		cfg.PDF.Validate = false
	}

	logger := logging.New(cfg.Log, cmd.ErrOrStderr()).With().
		Str("run_id", uuid.NewString()).
		Logger()
	ctx := logger.WithContext(cmd.Context())
	if f := viper.ConfigFileUsed(); f != "" {
		logger.Debug().Str("file", f).Msg("using config file")
	}

	in := cmd.InOrStdin()
	rawURL, err := readURL(args, in, cmd.ErrOrStderr(), isInteractive(in))
	if err != nil {
		return report(cmd, err)
	}

	// Reject a malformed URL before looking for credentials.
	if _, err := acquire.Resolve(rawURL); err != nil {
		return report(cmd, err)
	}

	p, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	progress := ui.NewProgress(os.Stderr)
	p.OnStage = func(s pipeline.Stage) { progress.Step(string(s)) }
	res, err := p.Run(ctx, rawURL)
	progress.Stop()
	if err != nil {
		logger.Debug().Err(err).Msg("run failed")
		return report(cmd, err)
	}

	return ui.RenderResult(cmd.OutOrStdout(), res, cfg.Output.Format)
}

// buildPipeline wires the production stages for cfg. It fails when no
// API key can be found for the configured provider.
func buildPipeline(ctx context.Context, cfg types.AppConfig) (*pipeline.Pipeline, error) {
	store, err := secrets.Load(ctx, secrets.DefaultDir)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Int("count", store.Len()).Msg("loaded secret files")

	llmCfg := llm.ResolveConfig(cfg.LLM)
	llmCfg.APIKey = store.APIKey(llmCfg.Provider, llmCfg.APIKey)
	if llmCfg.APIKey == "" {
		return nil, fmt.Errorf("no API key for provider %s: set %s, llm.api_key, or %s/%s-api-key",
			llmCfg.Provider, secrets.EnvVar(llmCfg.Provider), secrets.DefaultDir, llmCfg.Provider)
	}

	backend, err := llm.NewBackend(llmCfg, nil)
	if err != nil {
		return nil, err
	}

	return &pipeline.Pipeline{
		Fetcher:   acquire.NewFetcher(httputil.NewClient(cfg.HTTP), cfg.HTTP),
		Extractor: convert.NewExtractor(cfg.PDF),
		Completer: llm.NewClient(backend),
		Provider:  llmCfg.Provider,
		Model:     llmCfg.Model,
	}, nil
}

// readURL returns the URL argument, or reads one line from in when there
// is none. The prompt is shown only for interactive input.
func readURL(args []string, in io.Reader, prompt io.Writer, interactive bool) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	if interactive {
		fmt.Fprintln(prompt, banner)
		fmt.Fprintln(prompt, "Enter the URL of the research paper PDF:")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading URL: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%w: no URL provided", types.ErrInvalidInput)
	}
	return line, nil
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && ui.IsTerminal(f)
}

// report prints err with the usage hint and returns errReported so main
// exits non-zero without printing it again.
func report(cmd *cobra.Command, err error) error {
	ui.RenderError(cmd.ErrOrStderr(), err)
	return fmt.Errorf("%w: %w", errReported, err)
}
