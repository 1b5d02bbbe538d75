package service

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finance-ledger/internal/model"
)

var fixedNow = time.Date(2024, 7, 1, 12, 30, 45, 500, time.Local)

func newRecorder() *Recorder {
	r := NewRecorder(validator.New())
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestRecorder_Parse(t *testing.T) {
	testTable := []struct {
		name  string
		text  string
		kind  model.Kind
		entry model.Entry
	}{
		{
			name: "With description",
			text: "500000 maosh Iyul oyi maoshi",
			kind: model.Income,
			entry: model.Entry{
				Amount:      500000,
				Category:    "maosh",
				Description: "Iyul oyi maoshi",
				Kind:        model.Income,
			},
		},
		{
			name: "Without description",
			text: "50000 oziq-ovqat",
			kind: model.Expense,
			entry: model.Entry{
				Amount:   50000,
				Category: "oziq-ovqat",
				Kind:     model.Expense,
			},
		},
		{
			name: "Collapses whitespace",
			text: "  3.5   coffee \t with   milk ",
			kind: model.Expense,
			entry: model.Entry{
				Amount:      3.5,
				Category:    "coffee",
				Description: "with milk",
				Kind:        model.Expense,
			},
		},
		{
			name: "Category outside the suggested list",
			text: "10 crypto",
			kind: model.Income,
			entry: model.Entry{
				Amount:   10,
				Category: "crypto",
				Kind:     model.Income,
			},
		},
	}

	r := newRecorder()
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			entry, err := r.Parse(testCase.text, testCase.kind)
			if err != nil {
				t.Fatal(err)
			}
			testCase.entry.Date = model.Date{Time: fixedNow.Truncate(time.Second)}
			require.Equal(t, testCase.entry, entry)
		})
	}
}

func TestRecorder_ParseErrors(t *testing.T) {
	testTable := []struct {
		name   string
		text   string
		reason model.ParseReason
	}{
		{name: "Not a number", text: "abc food", reason: model.InvalidAmount},
		{name: "Only amount", text: "100", reason: model.TooFewFields},
		{name: "Empty", text: "   ", reason: model.TooFewFields},
		{name: "Zero", text: "0 food", reason: model.InvalidAmount},
		{name: "Negative", text: "-5 food", reason: model.InvalidAmount},
		{name: "NaN", text: "NaN food", reason: model.InvalidAmount},
		{name: "Infinity", text: "+Inf food", reason: model.InvalidAmount},
	}

	r := newRecorder()
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := r.Parse(testCase.text, model.Expense)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, testCase.reason, parseErr.Reason)
		})
	}
}
