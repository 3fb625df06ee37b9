package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mutasi-dev/mutasi/internal/export"
)

func newVerifyCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.csv>",
		Short: "Check an exported CSV for invalid rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			txns, err := export.ReadCSV(f, cfg.Output.DateFormat)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			errs := export.Validate(txns)
			for _, e := range errs {
				fmt.Fprintln(out, e.Error())
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d validation errors in %d transactions", len(errs), len(txns))
			}

			fmt.Fprintf(out, "OK: %d transactions\n", len(txns))
			return nil
		},
	}
}
