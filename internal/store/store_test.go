package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(t.TempDir(), logging.NewMockLogger())
	s.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	return s
}

func sampleAnalysis() models.ReceiptAnalysis {
	return models.ReceiptAnalysis{
		Date:        "12/03/2025",
		Merchant:    "Starbucks Coffee",
		ParsedTotal: decimal.NewFromInt(253),
		Confidence:  100,
		LineItems: []models.LineItem{
			{Description: "Café Latte", Amount: decimal.NewFromInt(150)},
		},
		SuggestedCategories: []string{models.CategoryFood},
		SuggestedCategory:   models.CategoryFood,
		ExtractedText:       "Starbucks Coffee\nTotal: 253",
		IncludeInReports:    true,
	}
}

func sampleTransaction() models.Transaction {
	return models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("150.50"),
		Category:    models.CategoryFood,
		Description: "coffee",
		Date:        "2025-03-14",
	}
}

func TestFileStore_EmptyScope(t *testing.T) {
	s := newTestStore(t)

	analyses, err := s.ReceiptAnalyses(models.ScopeGuest)
	require.NoError(t, err)
	assert.NotNil(t, analyses)
	assert.Empty(t, analyses)

	txs, err := s.Transactions(models.ScopeUser)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestFileStore_ReceiptAnalysisRoundTrip(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.AddReceiptAnalysis(models.ScopeGuest, sampleAnalysis())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), saved.CreatedAt)

	_, err = os.Stat(filepath.Join(s.Root(), "guest", "receipt-analyses.yaml"))
	require.NoError(t, err)

	loaded, err := s.ReceiptAnalyses(models.ScopeGuest)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved.ID, loaded[0].ID)
	assert.Equal(t, "Starbucks Coffee", loaded[0].Merchant)
	assert.True(t, loaded[0].ParsedTotal.Equal(decimal.NewFromInt(253)))
	assert.True(t, loaded[0].CreatedAt.Equal(saved.CreatedAt))
	require.Len(t, loaded[0].LineItems, 1)
	assert.Equal(t, "Café Latte", loaded[0].LineItems[0].Description)
	assert.True(t, loaded[0].LineItems[0].Amount.Equal(decimal.NewFromInt(150)))

	other, err := s.ReceiptAnalyses(models.ScopeUser)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFileStore_TransactionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddTransaction(models.ScopeUser, sampleTransaction())
	require.NoError(t, err)
	second, err := s.AddTransaction(models.ScopeUser, sampleTransaction())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	txs, err := s.Transactions(models.ScopeUser)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, first.ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("150.50")))
}

func TestFileStore_AddTransactionValidation(t *testing.T) {
	s := newTestStore(t)
	tx := sampleTransaction()
	tx.Amount = decimal.Zero

	_, err := s.AddTransaction(models.ScopeGuest, tx)
	var validationErr *parsererror.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestFileStore_CorruptFile(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewFileStore(t.TempDir(), logger)
	path := filepath.Join(s.Root(), "guest", "transactions.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0600))

	_, err := s.Transactions(models.ScopeGuest)
	var storeErr *parsererror.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "read", storeErr.Operation)
	assert.Equal(t, "guest", storeErr.Scope)
	assert.True(t, logger.HasEntry("ERROR", "Store operation failed"))
}

func TestFileStore_MigrateGuest(t *testing.T) {
	s := newTestStore(t)

	guestAnalysis, err := s.AddReceiptAnalysis(models.ScopeGuest, sampleAnalysis())
	require.NoError(t, err)
	_, err = s.AddTransaction(models.ScopeGuest, sampleTransaction())
	require.NoError(t, err)
	_, err = s.AddTransaction(models.ScopeUser, sampleTransaction())
	require.NoError(t, err)

	result, err := s.MigrateGuest()
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{ReceiptAnalyses: 1, Transactions: 1}, result)

	userAnalyses, err := s.ReceiptAnalyses(models.ScopeUser)
	require.NoError(t, err)
	require.Len(t, userAnalyses, 1)
	assert.Equal(t, guestAnalysis.ID, userAnalyses[0].ID)

	userTxs, err := s.Transactions(models.ScopeUser)
	require.NoError(t, err)
	assert.Len(t, userTxs, 2)

	guestTxs, err := s.Transactions(models.ScopeGuest)
	require.NoError(t, err)
	assert.Len(t, guestTxs, 1, "guest data is kept")

	again, err := s.MigrateGuest()
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{}, again)
}

func TestFileStore_MigrateGuestWithoutData(t *testing.T) {
	s := newTestStore(t)
	result, err := s.MigrateGuest()
	require.NoError(t, err)
	assert.Equal(t, MigrationResult{}, result)
}

func TestFileStore_ConcurrentWrites(t *testing.T) {
	s := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddTransaction(models.ScopeGuest, sampleTransaction())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	txs, err := s.Transactions(models.ScopeGuest)
	require.NoError(t, err)
	assert.Len(t, txs, 20)
}

func TestMockStore(t *testing.T) {
	m := NewMockStore()
	_, err := m.AddTransaction(models.ScopeGuest, sampleTransaction())
	require.NoError(t, err)

	result, err := m.MigrateGuest()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Transactions)

	txs, err := m.Transactions(models.ScopeUser)
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	m.AddTransactionError = errors.New("boom")
	_, err = m.AddTransaction(models.ScopeGuest, sampleTransaction())
	assert.Error(t, err)
}
