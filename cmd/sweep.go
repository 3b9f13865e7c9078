package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hal/stalesweep/config"
	"github.com/hal/stalesweep/internal/duration"
	"github.com/hal/stalesweep/internal/ghclient"
	"github.com/hal/stalesweep/internal/log"
	"github.com/hal/stalesweep/internal/report"
	"github.com/hal/stalesweep/internal/sweep"
)

// NewCmdSweep creates the sweep command.
func NewCmdSweep(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one sweep over the repository (same as root stalesweep)",
		Long: `Lists every open issue, finds assignees inactive past the threshold,
removes them unless an open pull request is linked to the issue, posts a
comment naming the removed users, and prints a summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, opts)
		},
	}

	addSweepFlags(cmd, opts)
	return cmd
}

// addSweepFlags adds the sweep-specific flags to a command.
func addSweepFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Repo, "repo", "r", "", "Target repository (owner/name; default: GITHUB_REPOSITORY)")
	cmd.Flags().StringVarP(&opts.InactiveFor, "inactive-for", "i", "", "Inactivity threshold (e.g., 45m, 12h, 30d). Required unless configured")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (text, table, markdown, json)")
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Chat webhook URL for the run summary")
	cmd.Flags().StringSliceVar(&opts.ExemptUsers, "exempt-user", nil, "User never unassigned (repeatable)")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report what would change without mutating anything")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Per-call deadline in seconds (default 30)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

func runSweep(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg, opts)

	repoName := cfg.GetRepo()
	if repoName == "" {
		return ghclient.ErrMissingRepo
	}
	owner, name, err := config.SplitRepo(repoName)
	if err != nil {
		return err
	}

	if cfg.InactiveFor == "" {
		return sweep.ErrMissingThreshold
	}
	threshold, err := duration.Parse(cfg.InactiveFor)
	if err != nil {
		return fmt.Errorf("invalid --inactive-for value: %w", err)
	}

	client, err := ghclient.NewClient(ctx, cfg.GetGitHubToken())
	if err != nil {
		return err
	}

	engine := sweep.New(client, sweep.Config{
		Owner:       owner,
		Repo:        name,
		Threshold:   threshold,
		ExemptUsers: cfg.ExemptUsers,
		DryRun:      cfg.DryRun,
		CallTimeout: cfg.CallTimeout(),
	})

	result, runErr := engine.Run(ctx)
	if result == nil {
		return runErr
	}

	summary := report.Build(repoName, result)
	if err := printSummary(cfg, opts, summary); err != nil {
		return err
	}

	// A failed run still printed its partial summary; surface the failure.
	if runErr != nil {
		return runErr
	}

	notifyWebhook(ctx, cfg, summary)

	if err := report.WriteStepOutputs(summary); err != nil {
		log.Warn("failed to publish workflow outputs", "error", err)
	}

	return nil
}

// applyFlags overlays command-line flags onto the loaded config.
func applyFlags(cfg *config.Config, opts *Options) {
	if opts.Repo != "" {
		cfg.Repo = opts.Repo
	}
	if opts.InactiveFor != "" {
		cfg.InactiveFor = opts.InactiveFor
	}
	if opts.Format != "" {
		cfg.DefaultFormat = opts.Format
	}
	if opts.WebhookURL != "" {
		cfg.WebhookURL = opts.WebhookURL
	}
	if opts.DryRun {
		cfg.DryRun = true
	}
	if opts.Timeout > 0 {
		cfg.TimeoutSeconds = opts.Timeout
	}
	cfg.ExemptUsers = append(cfg.ExemptUsers, opts.ExemptUsers...)
}

// printSummary renders the summary to stdout. Without an explicit format
// the choice follows the destination: a table on a terminal, plain text
// otherwise.
func printSummary(cfg *config.Config, opts *Options, summary report.Summary) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	name := cfg.DefaultFormat
	if name == "" {
		if isTTY {
			name = string(report.FormatTable)
		} else {
			name = string(report.FormatText)
		}
	}

	outputFormat, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	formatter := report.NewFormatter(outputFormat)
	if table, ok := formatter.(*report.TableFormatter); ok {
		table.NoColor = opts.NoColor || !isTTY
	}

	return formatter.Format(summary, os.Stdout)
}

// notifyWebhook forwards the summary to the configured chat webhook.
// Best-effort: failures are logged and never fail the run.
func notifyWebhook(ctx context.Context, cfg *config.Config, summary report.Summary) {
	url := cfg.GetWebhookURL()
	if url == "" || summary.Empty() || summary.DryRun {
		return
	}

	start := time.Now()
	if err := report.NewNotifier(url).Notify(ctx, summary.Join("\n")); err != nil {
		log.Warn("webhook notification failed", "error", err)
		return
	}
	log.Debug("webhook notified", "took", time.Since(start))
}
