package main

import (
	"fmt"

	"github.com/hollisb/penny/internal/cli"

	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			count, err := store.TransactionCount(ctx)
			if err != nil {
				return fmt.Errorf("failed to count transactions: %w", err)
			}

			fmt.Println(cli.FormatTitle("Accounts"))
			fmt.Println(cli.RenderAccountsTable(accounts))
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transaction(s) in the ledger", count)))
			return nil
		},
	}
}
