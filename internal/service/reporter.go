package service

import (
	"context"
	"sort"

	"github.com/chucky-1/finance-ledger/internal/model"
	"github.com/chucky-1/finance-ledger/internal/repository"
)

const DefaultHistoryLimit = 10

const (
	excellentShare = 0.5
	goodShare      = 0.2
)

type Reporter struct {
	repo         repository.Ledger
	historyLimit int
}

func NewReporter(repo repository.Ledger, historyLimit int) *Reporter {
	return &Reporter{
		repo:         repo,
		historyLimit: historyLimit,
	}
}

func (r *Reporter) Stats(ctx context.Context, userID string) (model.Summary, error) {
	ledger, err := r.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return model.Summary{}, err
	}
	return Summarize(ledger), nil
}

func (r *Reporter) History(ctx context.Context, userID string) (model.History, error) {
	ledger, err := r.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return model.History{}, err
	}
	return RecentHistory(ledger, r.historyLimit), nil
}

// Summarize computes totals, balance, expenses by category and the status of the ledger
func Summarize(ledger *model.Ledger) model.Summary {
	var summary model.Summary
	for _, entry := range ledger.Income {
		summary.TotalIncome += entry.Amount
	}

	index := make(map[string]int)
	for _, entry := range ledger.Expense {
		summary.TotalExpense += entry.Amount
		i, ok := index[entry.Category]
		if !ok {
			i = len(summary.ByCategory)
			index[entry.Category] = i
			summary.ByCategory = append(summary.ByCategory, model.CategoryAmount{Name: entry.Category})
		}
		summary.ByCategory[i].Amount += entry.Amount
	}

	// categories are in order of first appearance, the stable sort keeps it for equal amounts
	sort.SliceStable(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Amount > summary.ByCategory[j].Amount
	})
	for i := range summary.ByCategory {
		if summary.TotalExpense > 0 {
			summary.ByCategory[i].Percentage = summary.ByCategory[i].Amount / summary.TotalExpense * 100
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	summary.Status = status(summary.Balance, summary.TotalIncome)
	summary.TransactionCount = ledger.Len()
	return summary
}

func status(balance, income float64) model.Status {
	switch {
	case balance > income*excellentShare:
		return model.Excellent
	case balance > income*goodShare:
		return model.Good
	case balance > 0:
		return model.Caution
	default:
		return model.Danger
	}
}

// RecentHistory returns at most limit transactions, the most recent first.
// Equal dates keep income before expense and insertion order within a kind.
func RecentHistory(ledger *model.Ledger, limit int) model.History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if ledger.Len() == 0 {
		return model.History{Empty: true}
	}

	transactions := make([]model.Entry, 0, ledger.Len())
	for _, entry := range ledger.Income {
		entry.Kind = model.Income
		transactions = append(transactions, entry)
	}
	for _, entry := range ledger.Expense {
		entry.Kind = model.Expense
		transactions = append(transactions, entry)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date.Time)
	})
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return model.History{Transactions: transactions}
}
