// Package batch handles batch analysis of receipt text files
package batch

import (
	"context"
	"fmt"
	"io"

	"sshub/ledger-assist/cmd/common"
	"sshub/ledger-assist/cmd/root"
	"sshub/ledger-assist/internal/batch"
	csvexport "sshub/ledger-assist/internal/common"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/currencyutils"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/store"

	"github.com/spf13/cobra"
)

var save bool

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch analyse receipt text files from a directory",
	Long: `Batch analyse every .txt receipt in an input directory and write one
summary row per receipt.

Receipts are analysed in parallel; the output keeps the file name order.
The default output format for batch is CSV.

Example:
  ledger-assist batch -i receipts/ -o summary.csv
  ledger-assist batch -i receipts/ --save --scope user`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&save, "save", false, "Store every analysis in the selected scope")
}

// summaryRow is the CSV form of models.AnalysisSummary.
type summaryRow struct {
	Source            string `csv:"Source"`
	Merchant          string `csv:"Merchant"`
	Date              string `csv:"Date"`
	Total             string `csv:"Total"`
	Items             int    `csv:"Items"`
	SuggestedCategory string `csv:"SuggestedCategory"`
	Confidence        int    `csv:"Confidence"`
}

type options struct {
	InputDir string
	Output   string
	Format   string
	Scope    string
	Save     bool
}

func batchFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
		return
	}

	format := root.SharedFlags.Format
	if format == "" {
		format = config.FormatCSV
	}
	format, err := root.ResolveFormat(format, appContainer.GetConfig())
	if err != nil {
		root.Log.Fatalf("%v", err)
		return
	}

	opts := options{
		InputDir: root.SharedFlags.Input,
		Output:   root.SharedFlags.Output,
		Format:   format,
		Scope:    root.SharedFlags.Scope,
		Save:     save,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := run(ctx, appContainer.GetBatchProcessor(), appContainer.GetStore(), opts, cmd.OutOrStdout(), root.Log); err != nil {
		root.Log.Fatalf("Error during batch analysis: %v", err)
	}
}

func run(ctx context.Context, processor *batch.Processor, st store.Store, opts options, out io.Writer, logger logging.Logger) error {
	if opts.InputDir == "" {
		return fmt.Errorf("input directory must be specified")
	}

	docs, err := batch.LoadDirectory(ctx, opts.InputDir)
	if err != nil {
		return fmt.Errorf("failed to load receipts: %w", err)
	}
	if len(docs) == 0 {
		logger.Warn("No receipt text files found in input directory",
			logging.Field{Key: logging.FieldInputFile, Value: opts.InputDir})
	}

	items, err := processor.Process(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to analyse receipts: %w", err)
	}
	logger.Info("Batch analysis completed", logging.Field{Key: logging.FieldCount, Value: len(items)})

	if opts.Save {
		if err := saveAll(st, opts.Scope, items, logger); err != nil {
			return err
		}
	}

	rows := batch.Summaries(items)
	if opts.Format == config.FormatCSV {
		return csvexport.WriteCSVTo(out, opts.Output, toCSVRows(rows), logger)
	}
	return common.Render(out, opts.Output, opts.Format, rows, logger)
}

func saveAll(st store.Store, scopeName string, items []batch.Item, logger logging.Logger) error {
	scope, err := models.ParseScope(scopeName)
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := st.AddReceiptAnalysis(scope, item.Analysis); err != nil {
			return fmt.Errorf("failed to save analysis of %s: %w", item.Source, err)
		}
	}
	logger.Info("Batch analyses saved",
		logging.Field{Key: logging.FieldScope, Value: scope},
		logging.Field{Key: logging.FieldCount, Value: len(items)})
	return nil
}

func toCSVRows(summaries []models.AnalysisSummary) []summaryRow {
	rows := make([]summaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, summaryRow{
			Source:            s.Source,
			Merchant:          s.Merchant,
			Date:              s.Date,
			Total:             currencyutils.FormatAmount(s.Total, ""),
			Items:             s.Items,
			SuggestedCategory: s.SuggestedCategory,
			Confidence:        s.Confidence,
		})
	}
	return rows
}
