// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"io"

	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/fileutils"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"

	"gopkg.in/yaml.v3"
)

// Marshal encodes value as indented JSON or as YAML.
func Marshal(value interface{}, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case config.FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("format %q cannot encode this result", format)
}

// Render writes value in format to path, or to out when path is empty.
func Render(out io.Writer, path, format string, value interface{}, logger logging.Logger) error {
	data, err := Marshal(value, format)
	if err != nil {
		return err
	}

	if path == "" {
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := fileutils.WriteFile(path, data, models.PermissionExport); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("Output written", logging.Field{Key: logging.FieldOutputFile, Value: path})
	}
	return nil
}
