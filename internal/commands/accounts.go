package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ynabflow/internal/accounts"
	"github.com/cleared-dev/ynabflow/internal/register"
)

func newAccountsCommand() *cobra.Command {
	var output string
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "accounts <register.csv>",
		Short: "Write an account filter listing every account in a register export",
		Long: `Reads a register export and writes an account filter file with every
account found set to true. Edit the file and set accounts to false to leave
them out of reports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd, args[0], format, output, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "account-filter.yaml", "account filter file to write")
	cmd.Flags().StringVar(&format, "format", "ynab", "register format")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing account filter")

	return cmd
}

func runAccounts(cmd *cobra.Command, registerPath, format, output string, force bool) error {
	if !force {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", output)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", output, err)
		}
	}

	names, err := discoverAccounts(registerPath, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d unique accounts:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if err := accounts.Save(output, accounts.IncludeAll(names)); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAccount filter saved to: %s\n", output)
	fmt.Fprintln(out, "All accounts are included. Set an account to false to exclude it.")
	return nil
}

func discoverAccounts(registerPath, format string) ([]string, error) {
	parser, err := register.DefaultRegistry().Lookup(format)
	if err != nil {
		return nil, err
	}
	records, err := register.ReadFile(parser, registerPath)
	if err != nil {
		return nil, err
	}
	return accounts.Discover(records), nil
}
