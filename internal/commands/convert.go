package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mutasi-dev/mutasi/internal/config"
	"github.com/mutasi-dev/mutasi/internal/export"
	"github.com/mutasi-dev/mutasi/internal/importer"
	"github.com/mutasi-dev/mutasi/internal/model"
	"github.com/mutasi-dev/mutasi/internal/pdftext"
	"github.com/mutasi-dev/mutasi/internal/statement"
	"github.com/mutasi-dev/mutasi/internal/summary"
)

type convertOptions struct {
	output  string
	format  string
	preview int
	archive bool
}

func newConvertCommand(global *globalOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [input.pdf|dir ...]",
		Short: "Extract transactions from statement PDFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("preview") {
				opts.preview = cfg.Output.Preview
			}
			if opts.format == "" {
				opts.format = cfg.Output.Format
			}
			if len(args) == 0 {
				args = []string{cfg.Input}
			}

			inputs, err := importer.Resolve(args)
			if err != nil {
				return err
			}
			if opts.output != "" && len(inputs) > 1 {
				return errors.New("--output needs exactly one input")
			}

			return runConvert(cmd.OutOrStdout(), cfg, inputs, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: csv or xlsx (default from config)")
	cmd.Flags().IntVar(&opts.preview, "preview", 5, "number of transactions to print")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "move converted PDFs into processed/")

	return cmd
}

func runConvert(out io.Writer, cfg *config.Config, inputs []string, opts *convertOptions) error {
	registry := export.DefaultRegistry(cfg.Output.DateFormat)
	exp := registry.Get(opts.format)
	if exp == nil {
		return fmt.Errorf("unknown format %q (available: %s)", opts.format, strings.Join(registry.Formats(), ", "))
	}

	parser := statement.New(cfg)
	for _, input := range inputs {
		dst := opts.output
		if dst == "" {
			dst = export.OutputPath(input, exp.Extension())
		}

		res, err := convertFile(input, dst, parser, exp)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Wrote %d transactions from %s to %s\n", len(res.Transactions), input, dst)
		summary.Preview(out, res.Transactions, opts.preview, cfg.Currency.Code)
		summary.Print(out, summary.Summarize(res.Transactions, len(res.Skipped)), cfg.Currency.Code)

		if opts.archive {
			moved, err := importer.MarkProcessed(input)
			if err != nil {
				return err
			}
			logrus.WithField("path", moved).Info("archived statement")
		}
	}
	return nil
}

func convertFile(input, dst string, parser *statement.Parser, exp export.Exporter) (statement.Result, error) {
	log := logrus.WithField("input", input)

	pages, err := pdftext.Extract(input)
	if err != nil {
		return statement.Result{}, err
	}
	log.WithField("pages", len(pages)).Debug("extracted text")

	res := parser.WithLogger(log).Parse(pages)
	log.WithFields(logrus.Fields{
		"rows":         res.Rows,
		"amount_rows":  res.AmountRows,
		"transactions": len(res.Transactions),
		"skipped":      len(res.Skipped),
	}).Debug("parsed statement")

	for _, v := range export.Validate(res.Transactions) {
		log.WithField("row", v.Row).Warn(v.Description)
	}

	if err := writeOutput(dst, exp, res.Transactions); err != nil {
		return statement.Result{}, err
	}
	return res, nil
}

func writeOutput(path string, exp export.Exporter, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := exp.Export(f, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
