// Package intent handles the finance command classification command
package intent

import (
	"fmt"
	"io"
	"strings"

	"sshub/ledger-assist/cmd/common"
	"sshub/ledger-assist/cmd/root"
	csvexport "sshub/ledger-assist/internal/common"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/currencyutils"
	"sshub/ledger-assist/internal/dateutils"
	intentmatch "sshub/ledger-assist/internal/intent"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/store"

	"github.com/spf13/cobra"
)

var record bool

// Cmd represents the intent command
var Cmd = &cobra.Command{
	Use:   "intent [command text]",
	Short: "Classify a short finance command",
	Long: `Classify a short finance command into an intent and extract its
amount, date, description, category, goal or report topic.

With --record, expenses, income and recurring expenses that carry an amount
are stored as transactions in the selected scope.

Example:
  ledger-assist intent "add ₹150 for coffee today"
  ledger-assist intent --record --scope user "earned ₹5000 from freelance"`,
	Args: cobra.MinimumNArgs(1),
	Run:  intentFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&record, "record", "r", false, "Store expenses and income as transactions")
}

type options struct {
	Text   string
	Record bool
	Scope  string
	Output string
	Format string
}

// Output is the command result: the detected intent plus the transaction
// recorded from it, if any.
type Output struct {
	intentmatch.Result `yaml:",inline"`
	Recorded           *models.Transaction `json:"recorded,omitempty" yaml:"recorded,omitempty"`
}

type resultRow struct {
	Intent      string  `csv:"Intent"`
	Confidence  float64 `csv:"Confidence"`
	Amount      string  `csv:"Amount"`
	Category    string  `csv:"Category"`
	Description string  `csv:"Description"`
	Date        string  `csv:"Date"`
	Recorded    string  `csv:"Recorded"`
}

func intentFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
		return
	}

	format, err := root.ResolveFormat(root.SharedFlags.Format, appContainer.GetConfig())
	if err != nil {
		root.Log.Fatalf("%v", err)
		return
	}

	opts := options{
		Text:   strings.Join(args, " "),
		Record: record,
		Scope:  root.SharedFlags.Scope,
		Output: root.SharedFlags.Output,
		Format: format,
	}
	if err := run(appContainer.GetIntentMatcher(), appContainer.GetStore(), dateutils.SystemClock, opts, cmd.OutOrStdout(), root.Log); err != nil {
		root.Log.Fatalf("Error handling command: %v", err)
	}
}

func run(matcher *intentmatch.Matcher, st store.Store, clock dateutils.Clock, opts options, out io.Writer, logger logging.Logger) error {
	result := matcher.Detect(opts.Text)
	logger.Debug("Intent detected",
		logging.Field{Key: logging.FieldIntent, Value: result.Intent},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence})

	output := Output{Result: result}
	if opts.Record {
		recorded, err := recordTransaction(result, st, clock, opts.Scope, logger)
		if err != nil {
			return err
		}
		output.Recorded = recorded
	}

	if opts.Format == config.FormatCSV {
		return csvexport.WriteCSVTo(out, opts.Output, []resultRow{toRow(output)}, logger)
	}
	return common.Render(out, opts.Output, opts.Format, output, logger)
}

func recordTransaction(result intentmatch.Result, st store.Store, clock dateutils.Clock, scopeName string, logger logging.Logger) (*models.Transaction, error) {
	tx, ok := result.Transaction(dateutils.Today(clock()))
	if !ok {
		logger.Warn("Nothing to record for this command", logging.Field{Key: logging.FieldIntent, Value: result.Intent})
		return nil, nil
	}

	scope, err := models.ParseScope(scopeName)
	if err != nil {
		return nil, err
	}
	saved, err := st.AddTransaction(scope, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	logger.Info("Transaction recorded",
		logging.Field{Key: logging.FieldScope, Value: scope},
		logging.Field{Key: logging.FieldCategory, Value: saved.Category},
		logging.Field{Key: "amount", Value: currencyutils.FormatAmount(saved.Amount, "INR")})
	return &saved, nil
}

func toRow(output Output) resultRow {
	row := resultRow{
		Intent:     string(output.Intent),
		Confidence: output.Confidence,
	}
	if p := output.Params; p != nil {
		if p.Amount.Valid {
			row.Amount = currencyutils.FormatAmount(p.Amount.Decimal, "")
		}
		row.Category = p.Category()
		row.Description = p.Description()
		row.Date = p.Date
	}
	if output.Recorded != nil {
		row.Recorded = output.Recorded.ID
	}
	return row
}
