// Package common holds the CSV export shared by the receipt and batch
// commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"sshub/ledger-assist/internal/fileutils"
	"sshub/ledger-assist/internal/logging"

	"github.com/gocarina/gocsv"
)

// Delimiter separates CSV fields in every export.
const Delimiter = ','

// WriteCSV marshals rows, header first, using the struct's csv tags.
func WriteCSV[TRow any](w io.Writer, rows []TRow) error {
	if rows == nil {
		rows = []TRow{}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to csvFile, creating parent directories as needed.
func WriteCSVFile[TRow any](csvFile string, rows []TRow, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	logger = logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	)
	logger.Debug("Writing CSV file")

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, rows); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}

	logger.Info("Successfully wrote CSV file")
	return nil
}

// WriteCSVTo writes rows to csvFile, or to out when csvFile is empty.
func WriteCSVTo[TRow any](out io.Writer, csvFile string, rows []TRow, logger logging.Logger) error {
	if csvFile == "" {
		return WriteCSV(out, rows)
	}
	return WriteCSVFile(csvFile, rows, logger)
}
