package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/caarlos0/env/v8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chucky-1/finance-ledger/internal/consumer"
	"github.com/chucky-1/finance-ledger/internal/model"
	"github.com/chucky-1/finance-ledger/internal/repository"
	"github.com/chucky-1/finance-ledger/internal/service"
)

type defaults struct {
	LedgerFile string `env:"LEDGER_FILE" envDefault:"user_data.json"`
}

func newRootCmd() *cobra.Command {
	var d defaults
	if err := env.Parse(&d); err != nil {
		logrus.Warnf("couldn't read defaults from the environment: %v", err)
	}

	var file string
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Inspect the finance ledger file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", d.LedgerFile, "path to the ledger file")

	store := func() *repository.FileStorage {
		return repository.NewFileStorage(file)
	}
	root.AddCommand(newStatsCmd(store), newHistoryCmd(store), newUsersCmd(store))
	return root
}

func newStatsCmd(store func() *repository.FileStorage) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user>",
		Short: "Print totals, balance and expenses by category of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := findLedger(cmd, store(), args[0])
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), consumer.StatsText(service.Summarize(ledger)))
		},
	}
}

func newHistoryCmd(store func() *repository.FileStorage) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <user>",
		Short: "Print the most recent transactions of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := findLedger(cmd, store(), args[0])
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), consumer.HistoryText(service.RecentHistory(ledger, limit)))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultHistoryLimit, "maximum number of transactions")
	return cmd
}

func newUsersCmd(store func() *repository.FileStorage) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users with a ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledgers, err := store().Load(cmd.Context())
			if err != nil {
				return err
			}
			users := make([]string, 0, len(ledgers))
			for user := range ledgers {
				users = append(users, user)
			}
			sort.Strings(users)
			for _, user := range users {
				if err = writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s\t%d", user, ledgers[user].Len())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// findLedger reads the ledger without creating it, the file is only read here
func findLedger(cmd *cobra.Command, store *repository.FileStorage, user string) (*model.Ledger, error) {
	ledgers, err := store.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	ledger, ok := ledgers[user]
	if !ok {
		return nil, fmt.Errorf("user %s has no ledger in %s", user, store.Path())
	}
	return ledger, nil
}

func writeLine(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}
