package model

import (
	"fmt"
	"time"
)

// DateLayout is the sortable format of entry dates in the store
const DateLayout = "2006-01-02 15:04:05"

type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Entry is one record of expenses or income
type Entry struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
	Kind        Kind    `json:"-" validate:"oneof=income expense"`
}

// Date is a local time with second precision
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(time.Second)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", data)
	}
	t, err := time.ParseInLocation(DateLayout, string(data[1:len(data)-1]), time.Local)
	if err != nil {
		return fmt.Errorf("couldn't parse date: %v", err)
	}
	d.Time = t
	return nil
}
