package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/config"
)

func newInitCommand() *cobra.Command {
	var registerPath string
	var startDate string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter ynabflow.yaml (and account filter)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, registerPath, startDate)
		},
	}

	cmd.Flags().StringVar(&registerPath, "register", "", "register export to discover accounts from")
	cmd.Flags().StringVar(&startDate, "start-date", "", "first date to report, YYYY-MM-DD (default Jan 1 this year)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, registerPath, startDate string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default()
	if startDate != "" {
		cfg.StartDate = startDate
	}
	if registerPath != "" {
		abs, err := filepath.Abs(registerPath)
		if err != nil {
			return fmt.Errorf("resolving register path: %w", err)
		}
		cfg.Register = abs
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Account filter: discovered from the register when one is given,
	// otherwise empty.
	filter := accounts.NewFilter(nil)
	if registerPath != "" {
		names, err := discoverAccounts(registerPath, cfg.Format)
		if err != nil {
			return err
		}
		filter = accounts.IncludeAll(names)
	}

	filterPath := filepath.Join(dir, cfg.AccountFilter)
	if _, err := os.Stat(filterPath); errors.Is(err, fs.ErrNotExist) {
		if err := accounts.Save(filterPath, filter); err != nil {
			return fmt.Errorf("writing account filter: %w", err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ynabflow at %s (%d accounts)\n", dir, filter.Len())
	return nil
}
