package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chucky-1/finance-ledger/internal/model"
)

// ParseError is returned when a message can't be turned into an entry. The user may retry.
type ParseError struct {
	Reason model.ParseReason
	Input  string
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case model.TooFewFields:
		return fmt.Sprintf("expected amount and category, got %q", e.Input)
	case model.InvalidAmount:
		return fmt.Sprintf("amount must be a positive number, got %q", e.Input)
	}
	return fmt.Sprintf("couldn't parse %q", e.Input)
}

// Recorder turns text messages into entries
type Recorder struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewRecorder(validate *validator.Validate) *Recorder {
	return &Recorder{
		validate: validate,
		now:      time.Now,
	}
}

// Parse reads "amount category [description...]"
func (r *Recorder) Parse(text string, kind model.Kind) (model.Entry, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return model.Entry{}, &ParseError{Reason: model.TooFewFields, Input: text}
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsInf(amount, 0) || r.validate.Var(amount, "gt=0") != nil {
		return model.Entry{}, &ParseError{Reason: model.InvalidAmount, Input: fields[0]}
	}

	entry := model.Entry{
		Amount:      amount,
		Category:    fields[1],
		Description: strings.Join(fields[2:], " "),
		Date:        model.NewDate(r.now()),
		Kind:        kind,
	}
	if err = r.validate.Struct(entry); err != nil {
		return model.Entry{}, fmt.Errorf("service.Recorder.Parse invalid entry: %v", err)
	}
	return entry, nil
}
