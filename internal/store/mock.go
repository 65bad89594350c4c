package store

import (
	"sync"

	"sshub/ledger-assist/internal/models"

	"github.com/google/uuid"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu           sync.Mutex
	analyses     map[models.Scope][]models.ReceiptAnalysis
	transactions map[models.Scope][]models.Transaction

	// Error fields for testing error conditions
	AddReceiptAnalysisError error
	AddTransactionError     error
	MigrateError            error
}

// NewMockStore returns an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		analyses:     make(map[models.Scope][]models.ReceiptAnalysis),
		transactions: make(map[models.Scope][]models.Transaction),
	}
}

func (m *MockStore) AddReceiptAnalysis(scope models.Scope, analysis models.ReceiptAnalysis) (models.ReceiptAnalysis, error) {
	if m.AddReceiptAnalysisError != nil {
		return models.ReceiptAnalysis{}, m.AddReceiptAnalysisError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	m.analyses[scope] = append(m.analyses[scope], analysis)
	return analysis, nil
}

func (m *MockStore) ReceiptAnalyses(scope models.Scope) ([]models.ReceiptAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ReceiptAnalysis{}, m.analyses[scope]...), nil
}

func (m *MockStore) AddTransaction(scope models.Scope, tx models.Transaction) (models.Transaction, error) {
	if m.AddTransactionError != nil {
		return models.Transaction{}, m.AddTransactionError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	m.transactions[scope] = append(m.transactions[scope], tx)
	return tx, nil
}

func (m *MockStore) Transactions(scope models.Scope) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Transaction{}, m.transactions[scope]...), nil
}

// MigrateGuest appends every guest record to the user scope.
func (m *MockStore) MigrateGuest() (MigrationResult, error) {
	if m.MigrateError != nil {
		return MigrationResult{}, m.MigrateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	guestAnalyses := m.analyses[models.ScopeGuest]
	guestTxs := m.transactions[models.ScopeGuest]
	m.analyses[models.ScopeUser] = append(m.analyses[models.ScopeUser], guestAnalyses...)
	m.transactions[models.ScopeUser] = append(m.transactions[models.ScopeUser], guestTxs...)
	return MigrationResult{ReceiptAnalyses: len(guestAnalyses), Transactions: len(guestTxs)}, nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MockStore)(nil)
)
