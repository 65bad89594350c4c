// Package suggest handles the category suggestion command
package suggest

import (
	"fmt"
	"io"
	"strings"

	"sshub/ledger-assist/cmd/common"
	"sshub/ledger-assist/cmd/root"
	"sshub/ledger-assist/internal/categorizer"
	csvexport "sshub/ledger-assist/internal/common"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/logging"

	"github.com/spf13/cobra"
)

var (
	merchant    string
	keywords    []string
	description string
	list        bool
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest spending categories for a merchant",
	Long: `Suggest up to three spending categories for a merchant, best first.

Keywords such as line item descriptions add weight to the categories they
mention. --description maps a free-form expense description to a single
category instead, and --list prints the keyword table.

Example:
  ledger-assist suggest --merchant "Starbucks Coffee"
  ledger-assist suggest -m "Corner Shop" -k "phone recharge" -k "bus pass"
  ledger-assist suggest --description "uber to airport"`,
	Run: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "Merchant name")
	Cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Extra keyword, repeatable")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Expense description to categorize")
	Cmd.Flags().BoolVarP(&list, "list", "l", false, "List the category keyword table")
}

type options struct {
	Merchant    string
	Keywords    []string
	Description string
	List        bool
	Output      string
	Format      string
}

// Suggestion is the result of a merchant lookup.
type Suggestion struct {
	Merchant    string   `json:"merchant" yaml:"merchant"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// DescriptionCategory is the result of a description lookup.
type DescriptionCategory struct {
	Description string `json:"description" yaml:"description" csv:"Description"`
	Category    string `json:"category" yaml:"category" csv:"Category"`
}

type suggestionRow struct {
	Rank     int    `csv:"Rank"`
	Category string `csv:"Category"`
}

type tableRow struct {
	Category string `csv:"Category"`
	Keywords string `csv:"Keywords"`
}

func suggestFunc(cmd *cobra.Command, args []string) {
	var cfg *config.Config
	if appContainer := root.GetContainer(); appContainer != nil {
		cfg = appContainer.GetConfig()
	}

	format, err := root.ResolveFormat(root.SharedFlags.Format, cfg)
	if err != nil {
		root.Log.Fatalf("%v", err)
		return
	}

	opts := options{
		Merchant:    merchant,
		Keywords:    keywords,
		Description: description,
		List:        list,
		Output:      root.SharedFlags.Output,
		Format:      format,
	}
	if err := run(opts, cmd.OutOrStdout(), root.Log); err != nil {
		root.Log.Fatalf("Error suggesting categories: %v", err)
	}
}

func run(opts options, out io.Writer, logger logging.Logger) error {
	switch {
	case opts.List:
		return writeTable(opts, out, logger)
	case opts.Description != "":
		result := DescriptionCategory{
			Description: opts.Description,
			Category:    categorizer.CategorizeDescription(opts.Description),
		}
		if opts.Format == config.FormatCSV {
			return csvexport.WriteCSVTo(out, opts.Output, []DescriptionCategory{result}, logger)
		}
		return common.Render(out, opts.Output, opts.Format, result, logger)
	case strings.TrimSpace(opts.Merchant) == "" && len(opts.Keywords) == 0:
		return fmt.Errorf("--merchant, --keyword, --description or --list is required")
	}

	suggestions := categorizer.SuggestCategories(opts.Merchant, opts.Keywords)
	logger.Debug("Categories suggested",
		logging.Field{Key: logging.FieldMerchant, Value: opts.Merchant},
		logging.Field{Key: logging.FieldCategory, Value: suggestions[0]})

	if opts.Format == config.FormatCSV {
		rows := make([]suggestionRow, len(suggestions))
		for i, name := range suggestions {
			rows[i] = suggestionRow{Rank: i + 1, Category: name}
		}
		return csvexport.WriteCSVTo(out, opts.Output, rows, logger)
	}
	return common.Render(out, opts.Output, opts.Format, Suggestion{
		Merchant:    opts.Merchant,
		Keywords:    opts.Keywords,
		Suggestions: suggestions,
	}, logger)
}

func writeTable(opts options, out io.Writer, logger logging.Logger) error {
	table := categorizer.Categories()
	if opts.Format != config.FormatCSV {
		return common.Render(out, opts.Output, opts.Format, table, logger)
	}

	rows := make([]tableRow, len(table))
	for i, c := range table {
		rows[i] = tableRow{Category: c.Name, Keywords: strings.Join(c.Keywords, ";")}
	}
	return csvexport.WriteCSVTo(out, opts.Output, rows, logger)
}
