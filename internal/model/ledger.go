package model

// Ledger holds the income and expense entries of one user in insertion order
type Ledger struct {
	Income  []Entry `json:"income"`
	Expense []Entry `json:"expense"`
}

// Ledgers is the whole store, key: user id
type Ledgers map[string]*Ledger

func NewLedger() *Ledger {
	return &Ledger{
		Income:  []Entry{},
		Expense: []Entry{},
	}
}

// Add appends the entry to the list its kind belongs to
func (l *Ledger) Add(entry Entry) {
	switch entry.Kind {
	case Income:
		l.Income = append(l.Income, entry)
	case Expense:
		l.Expense = append(l.Expense, entry)
	}
}

func (l *Ledger) Len() int {
	return len(l.Income) + len(l.Expense)
}

// Normalize restores the kind of every entry and replaces nil lists,
// both are lost when the ledger comes from json
func (l *Ledger) Normalize() {
	if l.Income == nil {
		l.Income = []Entry{}
	}
	if l.Expense == nil {
		l.Expense = []Entry{}
	}
	for i := range l.Income {
		l.Income[i].Kind = Income
	}
	for i := range l.Expense {
		l.Expense[i].Kind = Expense
	}
}
