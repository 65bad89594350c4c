// Package container wires the application's dependencies from its
// configuration.
package container

import (
	"context"
	"fmt"
	"time"

	"sshub/ledger-assist/internal/analysis"
	"sshub/ledger-assist/internal/batch"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/intent"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/ocr"
	"sshub/ledger-assist/internal/receipt"
	"sshub/ledger-assist/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     store.Store
	gemini    *ocr.GeminiExtractor
	extractor ocr.Extractor
	analysis  *analysis.Service
	matcher   *intent.Matcher
	batch     *batch.Processor
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := config.ConfigureLoggingFromConfig(cfg)

	fileStore := store.NewFileStore(cfg.DataDirectory(), logger)

	var gemini *ocr.GeminiExtractor
	if cfg.OCR.Enabled {
		timeout := time.Duration(cfg.OCR.TimeoutSeconds) * time.Second
		var err error
		gemini, err = ocr.NewGeminiExtractor(context.Background(), cfg.OCR.APIKey, cfg.OCR.Model, timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create OCR extractor: %w", err)
		}
		logger.Info("OCR enabled", logging.Field{Key: logging.FieldProvider, Value: cfg.OCR.Model})
	} else {
		logger.Debug("OCR disabled, images resolve to fallback text")
	}

	// A nil *GeminiExtractor must not become a non-nil interface.
	var primary ocr.Extractor
	if gemini != nil {
		primary = gemini
	}
	extractor := ocr.NewFallbackExtractor(primary, cfg.OCR.FallbackText, cfg.OCR.FallbackConfidence, logger)

	service := analysis.NewService(receipt.NewParser(), extractor, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "data_directory", Value: fileStore.Root()},
		logging.Field{Key: "ocr_enabled", Value: cfg.OCR.Enabled})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     fileStore,
		gemini:    gemini,
		extractor: extractor,
		analysis:  service,
		matcher:   intent.NewMatcher(),
		batch:     batch.NewProcessor(service, logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the scoped record store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetExtractor returns the OCR extractor, fallback included.
func (c *Container) GetExtractor() ocr.Extractor {
	return c.extractor
}

// GetAnalysisService returns the receipt analysis service.
func (c *Container) GetAnalysisService() *analysis.Service {
	return c.analysis
}

// GetIntentMatcher returns the intent matcher.
func (c *Container) GetIntentMatcher() *intent.Matcher {
	return c.matcher
}

// GetBatchProcessor returns the batch processor.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// Close releases the OCR client, if any.
func (c *Container) Close() error {
	if c.gemini != nil {
		if err := c.gemini.Close(); err != nil {
			return fmt.Errorf("failed to close OCR client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
