// Package receipt handles the receipt analysis command
package receipt

import (
	"context"
	"fmt"
	"io"

	"sshub/ledger-assist/cmd/common"
	"sshub/ledger-assist/cmd/root"
	"sshub/ledger-assist/internal/analysis"
	csvexport "sshub/ledger-assist/internal/common"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/fileutils"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/ocr"
	"sshub/ledger-assist/internal/store"

	"github.com/spf13/cobra"
)

var (
	imagePath string
	save      bool
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Analyse a receipt from OCR text or an image",
	Long: `Analyse a receipt and print its merchant, date, line items, total,
confidence and suggested categories.

The receipt is read from a text file (-i) holding OCR output, or from an image
(--image) that is transcribed first. When OCR is disabled or fails, the
configured fallback text is analysed instead.

With --format csv only the line items are written.

Example:
  ledger-assist receipt -i receipt.txt
  ledger-assist receipt --image photo.jpg --save --scope user -f yaml`,
	Run: receiptFunc,
}

func init() {
	Cmd.Flags().StringVar(&imagePath, "image", "", "Receipt image (jpg, png, webp, heic)")
	Cmd.Flags().BoolVar(&save, "save", false, "Store the analysis in the selected scope")
}

type options struct {
	Input  string
	Image  string
	Output string
	Format string
	Scope  string
	Save   bool
}

func receiptFunc(cmd *cobra.Command, args []string) {
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
		Input:  root.SharedFlags.Input,
		Image:  imagePath,
		Output: root.SharedFlags.Output,
		Format: format,
		Scope:  root.SharedFlags.Scope,
		Save:   save,
	}
	if err := run(cmd.Context(), appContainer.GetAnalysisService(), appContainer.GetStore(), opts, cmd.OutOrStdout(), root.Log); err != nil {
		root.Log.Fatalf("Error analysing receipt: %v", err)
	}
}

func run(ctx context.Context, service *analysis.Service, st store.Store, opts options, out io.Writer, logger logging.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if (opts.Input == "") == (opts.Image == "") {
		return fmt.Errorf("exactly one of --input or --image must be given")
	}

	result, err := analyse(ctx, service, opts)
	if err != nil {
		return err
	}

	if opts.Save {
		scope, err := models.ParseScope(opts.Scope)
		if err != nil {
			return err
		}
		result, err = st.AddReceiptAnalysis(scope, result)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		logger.Info("Receipt analysis saved",
			logging.Field{Key: logging.FieldScope, Value: scope},
			logging.Field{Key: "id", Value: result.ID})
	}

	if opts.Format == config.FormatCSV {
		return csvexport.WriteCSVTo(out, opts.Output, result.LineItems, logger)
	}
	return common.Render(out, opts.Output, opts.Format, result, logger)
}

func analyse(ctx context.Context, service *analysis.Service, opts options) (models.ReceiptAnalysis, error) {
	if opts.Input != "" {
		data, err := fileutils.ReadFile(opts.Input)
		if err != nil {
			return models.ReceiptAnalysis{}, err
		}
		return service.AnalyzeText(string(data), nil), nil
	}

	mimeType, err := ocr.MimeTypeFromPath(opts.Image)
	if err != nil {
		return models.ReceiptAnalysis{}, err
	}
	image, err := fileutils.ReadFile(opts.Image)
	if err != nil {
		return models.ReceiptAnalysis{}, err
	}
	return service.AnalyzeImage(ctx, image, mimeType)
}
