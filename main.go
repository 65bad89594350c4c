package main

import (
	"fmt"
	"os"
	"strings"

	"sshub/ledger-assist/cmd/batch"
	"sshub/ledger-assist/cmd/intent"
	"sshub/ledger-assist/cmd/migrate"
	"sshub/ledger-assist/cmd/receipt"
	"sshub/ledger-assist/cmd/root"
	"sshub/ledger-assist/cmd/suggest"
	"sshub/ledger-assist/internal/config"
	"sshub/ledger-assist/internal/logging"
)

func init() {
	// .env must be loaded before the first logger reads LEDGER_LOG_LEVEL.
	config.LoadEnv()

	root.Log = logging.NewLogrusAdapter(
		strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")),
		strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_FORMAT", "text")),
	)

	root.Init()

	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(intent.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(migrate.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
