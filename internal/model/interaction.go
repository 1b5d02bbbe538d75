package model

// Mode tells how the next text message of a user is interpreted
type Mode string

const (
	Idle            Mode = "idle"
	AwaitingIncome  Mode = "awaiting_income"
	AwaitingExpense Mode = "awaiting_expense"
)

func ModeFor(kind Kind) Mode {
	if kind == Income {
		return AwaitingIncome
	}
	return AwaitingExpense
}

// Awaits returns the kind of entry the mode waits for
func (m Mode) Awaits() (Kind, bool) {
	switch m {
	case AwaitingIncome:
		return Income, true
	case AwaitingExpense:
		return Expense, true
	}
	return "", false
}

type Result int

const (
	EntryRecorded Result = iota
	ParseFailed
	NotAwaiting
)

type ParseReason string

const (
	TooFewFields  ParseReason = "too_few_fields"
	InvalidAmount ParseReason = "invalid_amount"
)

// Outcome of a text message. Entry is set for EntryRecorded, Reason for ParseFailed.
type Outcome struct {
	Result Result
	Entry  *Entry
	Reason ParseReason
}

// Prompt is shown when a user starts entering income or expense
type Prompt struct {
	Kind       Kind
	Example    string
	Categories []string
}

var (
	IncomeCategories  = []string{"maosh", "biznes", "sovg'a", "boshqa"}
	ExpenseCategories = []string{"oziq-ovqat", "transport", "uy-joy", "kiyim", "o'yin-kulgi", "sog'liq", "ta'lim", "boshqa"}
)
