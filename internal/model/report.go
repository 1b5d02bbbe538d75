package model

type Status string

const (
	Excellent Status = "excellent"
	Good      Status = "good"
	Caution   Status = "caution"
	Danger    Status = "danger"
)

type CategoryAmount struct {
	Name       string
	Amount     float64
	Percentage float64
}

// Summary is the aggregate report of one ledger.
// ByCategory covers expenses only, ordered by amount descending.
type Summary struct {
	TotalIncome      float64
	TotalExpense     float64
	Balance          float64
	ByCategory       []CategoryAmount
	Status           Status
	TransactionCount int
}

// Percentage returns the share of the category in total expense, 0 for unknown categories
func (s Summary) Percentage(category string) float64 {
	for _, c := range s.ByCategory {
		if c.Name == category {
			return c.Percentage
		}
	}
	return 0
}

// History is the most recent transactions first, each tagged by its Kind.
// Empty is set when the user has none at all.
type History struct {
	Transactions []Entry
	Empty        bool
}
