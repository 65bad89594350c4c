// Package migrate handles copying guest data into the user scope
package migrate

import (
	"fmt"

	"sshub/ledger-assist/cmd/root"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy guest data into the user scope",
	Long: `Copy every receipt analysis and transaction recorded as a guest into the
user scope. Records already present in the user scope are not duplicated, so
the command can be run more than once. Guest data is left in place.

Example:
  ledger-assist migrate`,
	Run: migrateFunc,
}

func migrateFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
		return
	}

	if _, err := run(appContainer.GetStore(), root.Log); err != nil {
		root.Log.Fatalf("Error migrating guest data: %v", err)
	}
}

func run(st store.Store, logger logging.Logger) (store.MigrationResult, error) {
	result, err := st.MigrateGuest()
	if err != nil {
		return store.MigrationResult{}, fmt.Errorf("failed to migrate guest data: %w", err)
	}

	logger.Info("Guest data migrated",
		logging.Field{Key: "receipt_analyses", Value: result.ReceiptAnalyses},
		logging.Field{Key: "transactions", Value: result.Transactions})
	return result, nil
}
