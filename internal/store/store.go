// Package store persists receipt analyses and transactions as YAML files,
// one directory per auth scope.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/parsererror"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	receiptAnalysesFile = "receipt-analyses.yaml"
	transactionsFile    = "transactions.yaml"
)

// Store is the persistence collaborator used by the commands.
type Store interface {
	AddReceiptAnalysis(scope models.Scope, analysis models.ReceiptAnalysis) (models.ReceiptAnalysis, error)
	ReceiptAnalyses(scope models.Scope) ([]models.ReceiptAnalysis, error)
	AddTransaction(scope models.Scope, tx models.Transaction) (models.Transaction, error)
	Transactions(scope models.Scope) ([]models.Transaction, error)
	MigrateGuest() (MigrationResult, error)
}

// MigrationResult counts the records copied from the guest scope.
type MigrationResult struct {
	ReceiptAnalyses int
	Transactions    int
}

// FileStore keeps each scope's records under <root>/<scope>/. Access is
// serialised within the process.
type FileStore struct {
	root   string
	logger logging.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &FileStore{root: dir, logger: logger, now: time.Now}
}

// Root returns the directory holding the scope directories.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) path(scope models.Scope, file string) string {
	return filepath.Join(s.root, string(scope), file)
}

// AddReceiptAnalysis stores an analysis, assigning an ID and creation time
// when missing, and returns the stored record.
func (s *FileStore) AddReceiptAnalysis(scope models.Scope, analysis models.ReceiptAnalysis) (models.ReceiptAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = s.now().UTC()
	}

	path := s.path(scope, receiptAnalysesFile)
	var analyses []models.ReceiptAnalysis
	if err := readYAML(path, &analyses); err != nil {
		return models.ReceiptAnalysis{}, s.fail("read", scope, path, err)
	}
	analyses = append(analyses, analysis)
	if err := writeYAML(path, analyses); err != nil {
		return models.ReceiptAnalysis{}, s.fail("write", scope, path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldScope, Value: scope},
		logging.Field{Key: logging.FieldMerchant, Value: analysis.Merchant},
	).Debug("Saved receipt analysis")
	return analysis, nil
}

// ReceiptAnalyses lists the analyses of a scope, oldest first.
func (s *FileStore) ReceiptAnalyses(scope models.Scope) ([]models.ReceiptAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(scope, receiptAnalysesFile)
	analyses := []models.ReceiptAnalysis{}
	if err := readYAML(path, &analyses); err != nil {
		return nil, s.fail("read", scope, path, err)
	}
	return analyses, nil
}

// AddTransaction validates and stores a transaction, assigning an ID when
// missing, and returns the stored record.
func (s *FileStore) AddTransaction(scope models.Scope, tx models.Transaction) (models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, &parsererror.ValidationError{Field: "transaction", Reason: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	path := s.path(scope, transactionsFile)
	var txs []models.Transaction
	if err := readYAML(path, &txs); err != nil {
		return models.Transaction{}, s.fail("read", scope, path, err)
	}
	txs = append(txs, tx)
	if err := writeYAML(path, txs); err != nil {
		return models.Transaction{}, s.fail("write", scope, path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldScope, Value: scope},
		logging.Field{Key: logging.FieldCategory, Value: tx.Category},
	).Debug("Saved transaction")
	return tx, nil
}

// Transactions lists the transactions of a scope in insertion order.
func (s *FileStore) Transactions(scope models.Scope) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(scope, transactionsFile)
	txs := []models.Transaction{}
	if err := readYAML(path, &txs); err != nil {
		return nil, s.fail("read", scope, path, err)
	}
	return txs, nil
}

// MigrateGuest copies guest records into the user scope, as happens when a
// guest signs up. Records the user scope already holds (same ID) are skipped,
// so running it twice copies nothing new. Guest data is left in place.
func (s *FileStore) MigrateGuest() (MigrationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result MigrationResult

	n, err := migrateFile[models.ReceiptAnalysis](s, receiptAnalysesFile, func(a models.ReceiptAnalysis) string { return a.ID })
	if err != nil {
		return result, err
	}
	result.ReceiptAnalyses = n

	n, err = migrateFile[models.Transaction](s, transactionsFile, func(t models.Transaction) string { return t.ID })
	if err != nil {
		return result, err
	}
	result.Transactions = n

	s.logger.WithFields(
		logging.Field{Key: "receipt_analyses", Value: result.ReceiptAnalyses},
		logging.Field{Key: "transactions", Value: result.Transactions},
	).Info("Migrated guest data to user scope")
	return result, nil
}

func migrateFile[T any](s *FileStore, file string, id func(T) string) (int, error) {
	guestPath := s.path(models.ScopeGuest, file)
	userPath := s.path(models.ScopeUser, file)

	var guest, user []T
	if err := readYAML(guestPath, &guest); err != nil {
		return 0, s.fail("read", models.ScopeGuest, guestPath, err)
	}
	if len(guest) == 0 {
		return 0, nil
	}
	if err := readYAML(userPath, &user); err != nil {
		return 0, s.fail("read", models.ScopeUser, userPath, err)
	}

	seen := make(map[string]bool, len(user))
	for _, rec := range user {
		seen[id(rec)] = true
	}
	copied := 0
	for _, rec := range guest {
		if seen[id(rec)] {
			continue
		}
		user = append(user, rec)
		copied++
	}
	if copied == 0 {
		return 0, nil
	}
	if err := writeYAML(userPath, user); err != nil {
		return 0, s.fail("write", models.ScopeUser, userPath, err)
	}
	return copied, nil
}

// readYAML decodes path into out. A missing or empty file leaves out untouched.
func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeYAML replaces path atomically.
func writeYAML(path string, in interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing file: %w", err)
	}
	return nil
}

func (s *FileStore) fail(op string, scope models.Scope, path string, err error) error {
	s.logger.WithError(err).Error("Store operation failed",
		logging.Field{Key: logging.FieldOperation, Value: op},
		logging.Field{Key: logging.FieldScope, Value: scope})
	return &parsererror.StoreError{Operation: op, Scope: string(scope), Path: path, Err: err}
}
