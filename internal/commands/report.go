package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/config"
	"github.com/cleared-dev/ynabflow/internal/flow"
	"github.com/cleared-dev/ynabflow/internal/logger"
	"github.com/cleared-dev/ynabflow/internal/register"
	"github.com/cleared-dev/ynabflow/internal/render"
)

type reportFlags struct {
	configPath    string
	envFile       string
	register      string
	format        string
	accountFilter string
	startDate     string
	groupBy       string
	output        string
	title         string
	quiet         bool
}

func newReportCommand() *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the cash flow chart and print summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runReport(cmd, cfg, f.quiet)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", config.FileName, "config file")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "env file with YNABFLOW_* overrides (default .env if present)")
	cmd.Flags().StringVar(&f.register, "register", "", "register CSV export")
	cmd.Flags().StringVar(&f.format, "format", "", "register format")
	cmd.Flags().StringVar(&f.accountFilter, "account-filter", "", "account filter YAML")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "first date to report, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.groupBy, "group-by", "", `outflow grouping column ("Category Group" or "Category")`)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (.html or .json)")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print the summary")

	return cmd
}

// loadConfig layers the config file, env overrides and flags, in that order.
// A missing default config file is not an error. Relative paths in the config
// file are relative to the file; env and flag paths to the working directory.
func loadConfig(cmd *cobra.Command, f reportFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	switch {
	case err == nil:
		cfg.ResolvePaths(filepath.Dir(f.configPath))
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return nil, err
	}

	if err := cfg.ApplyEnv(f.envFile); err != nil {
		return nil, err
	}

	overrides := []struct {
		flag  string
		field *string
		value string
	}{
		{"register", &cfg.Register, f.register},
		{"format", &cfg.Format, f.format},
		{"account-filter", &cfg.AccountFilter, f.accountFilter},
		{"start-date", &cfg.StartDate, f.startDate},
		{"group-by", &cfg.GroupBy, f.groupBy},
		{"output", &cfg.Output, f.output},
		{"title", &cfg.Title, f.title},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.field = o.value
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runReport(cmd *cobra.Command, cfg *config.Config, quiet bool) error {
	log := logger.FromContext(cmd.Context())

	start, err := cfg.Start()
	if err != nil {
		return err
	}
	groupBy, err := cfg.Grouping()
	if err != nil {
		return err
	}

	parser, err := register.DefaultRegistry().Lookup(cfg.Format)
	if err != nil {
		return err
	}

	filter, err := accounts.Load(cfg.AccountFilter)
	if err != nil {
		return err
	}
	if len(filter.Included()) == 0 {
		log.Warn().Str("path", cfg.AccountFilter).Msg("account filter includes no accounts")
	}

	records, err := register.ReadFile(parser, cfg.Register)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.Register).Int("records", len(records)).Msg("read register")

	pipeline := flow.NewPipeline(flow.Options{Filter: filter, Start: start, GroupBy: groupBy}, log)
	result, err := pipeline.Run(records)
	if err != nil {
		return err
	}
	if result.Graph.Empty() {
		log.Warn().Time("start", start).Msg("no transactions left after filtering")
	}

	report := render.Report{
		Title:   cfg.Title,
		Source:  filepath.Base(cfg.Register),
		GroupBy: groupBy,
		Graph:   result.Graph,
		Stats:   result.Stats,
	}
	if cfg.Output != "" {
		if err := render.WriteFile(cfg.Output, report); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output).Int("nodes", len(result.Graph.Nodes)).Int("links", len(result.Graph.Links)).Msg("wrote chart")
	}

	if quiet {
		return nil
	}
	return render.Summary(cmd.OutOrStdout(), report)
}
