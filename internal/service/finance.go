package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-ledger/internal/model"
	"github.com/chucky-1/finance-ledger/internal/repository"
)

var prompts = map[model.Kind]model.Prompt{
	model.Income: {
		Kind:       model.Income,
		Example:    "500000 maosh Iyul oyi maoshi",
		Categories: model.IncomeCategories,
	},
	model.Expense: {
		Kind:       model.Expense,
		Example:    "50000 oziq-ovqat Do'konda xarid",
		Categories: model.ExpenseCategories,
	},
}

// Finance decides what a user event means: it switches modes, records entries and builds reports.
// Events of one user are handled one at a time.
type Finance struct {
	repo     repository.Ledger
	modes    repository.Modes
	recorder *Recorder
	reporter *Reporter
	locks    *userLocks
}

func NewFinance(repo repository.Ledger, modes repository.Modes, recorder *Recorder, reporter *Reporter) *Finance {
	return &Finance{
		repo:     repo,
		modes:    modes,
		recorder: recorder,
		reporter: reporter,
		locks: &userLocks{
			locks: make(map[string]*userLock),
		},
	}
}

func (f *Finance) HandleBegin(ctx context.Context, userID string, kind model.Kind) (model.Prompt, error) {
	prompt, ok := prompts[kind]
	if !ok {
		return model.Prompt{}, fmt.Errorf("service.Finance.HandleBegin unknown kind %q", kind)
	}

	defer f.locks.lock(userID)()
	f.modes.Set(ctx, userID, model.ModeFor(kind))
	logrus.Debugf("user %s is entering %s", userID, kind)
	return prompt, nil
}

func (f *Finance) HandleReset(ctx context.Context, userID string) {
	defer f.locks.lock(userID)()
	f.modes.Set(ctx, userID, model.Idle)
}

// HandleText parses the message as the entry the user is expected to send.
// The returned error is only about storage, the outcome reports everything else.
func (f *Finance) HandleText(ctx context.Context, userID, text string) (model.Outcome, error) {
	defer f.locks.lock(userID)()

	kind, ok := f.modes.Get(ctx, userID).Awaits()
	if !ok {
		return model.Outcome{Result: model.NotAwaiting}, nil
	}

	entry, err := f.recorder.Parse(text, kind)
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		logrus.WithFields(logrus.Fields{"user": userID, "kind": kind}).Debugf("couldn't parse entry: %v", parseErr)
		return model.Outcome{Result: model.ParseFailed, Reason: parseErr.Reason}, nil
	}
	if err != nil {
		return model.Outcome{}, err
	}

	if err = f.repo.Append(ctx, userID, entry); err != nil {
		return model.Outcome{}, fmt.Errorf("service.Finance.HandleText couldn't append entry: %w", err)
	}
	f.modes.Set(ctx, userID, model.Idle)

	logrus.WithFields(logrus.Fields{
		"user":     userID,
		"kind":     kind,
		"category": entry.Category,
		"amount":   entry.Amount,
	}).Info("entry recorded")
	return model.Outcome{Result: model.EntryRecorded, Entry: &entry}, nil
}

func (f *Finance) HandleStats(ctx context.Context, userID string) (model.Summary, error) {
	defer f.locks.lock(userID)()
	return f.reporter.Stats(ctx, userID)
}

func (f *Finance) HandleHistory(ctx context.Context, userID string) (model.History, error) {
	defer f.locks.lock(userID)()
	return f.reporter.History(ctx, userID)
}

func (f *Finance) Mode(ctx context.Context, userID string) model.Mode {
	defer f.locks.lock(userID)()
	return f.modes.Get(ctx, userID)
}

type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until no other event of the user is handled and returns the unlock function
func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()
	return func() {
		ul.mu.Unlock()
		l.mu.Lock()
		defer l.mu.Unlock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
	}
}
