package consumer

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-ledger/internal/model"
	"github.com/chucky-1/finance-ledger/internal/service"
)

const handleTimeout = 10 * time.Second

// Finance handles the updates of one user
type Finance struct {
	bot         *Bot
	userID      string
	updatesChan chan tgbotapi.Update
	finance     *service.Finance
}

func NewFinance(bot *Bot, userID string, updatesChan chan tgbotapi.Update, finance *service.Finance) *Finance {
	return &Finance{
		bot:         bot,
		userID:      userID,
		updatesChan: updatesChan,
		finance:     finance,
	}
}

func (f *Finance) Consume(ctx context.Context) {
	logrus.Debugf("finance consumer for user %s started", f.userID)
	for {
		select {
		case <-ctx.Done():
			logrus.Debugf("finance consumer for user %s stopped: %v", f.userID, ctx.Err())
			return
		case update, ok := <-f.updatesChan:
			if !ok {
				logrus.Debugf("finance consumer for user %s stopped: queue closed", f.userID)
				return
			}
			newCtx, cancel := context.WithTimeout(ctx, handleTimeout)
			var err error
			switch {
			case update.CallbackQuery != nil:
				err = f.handleCallback(newCtx, update.CallbackQuery)
			case update.Message != nil && update.Message.IsCommand():
				err = f.handleCommand(newCtx, update.Message)
			case update.Message != nil && update.Message.Text != "":
				err = f.handleText(newCtx, update.Message)
			}
			cancel()
			if err != nil {
				logrus.Errorf("finance consumer for user %s: %v", f.userID, err)
			}
		}
	}
}

func (f *Finance) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	switch message.Command() {
	case start:
		f.finance.HandleReset(ctx, f.userID)
		var name string
		if message.From != nil {
			name = message.From.FirstName
		}
		return f.bot.sendMessage(chatID, welcomeText(name), f.bot.mainMenu(f.userID))
	case history:
		h, err := f.finance.HandleHistory(ctx, f.userID)
		if err != nil {
			return f.failure(chatID, err)
		}
		return f.bot.sendMessage(chatID, HistoryText(h), nil)
	case stats:
		summary, err := f.finance.HandleStats(ctx, f.userID)
		if err != nil {
			return f.failure(chatID, err)
		}
		return f.bot.sendMessage(chatID, StatsText(summary), backMenu())
	default:
		logrus.Debugf("unknown command: %s", message.Text)
		return nil
	}
}

func (f *Finance) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if err := f.bot.answerCallback(query.ID); err != nil {
		logrus.Error(err)
	}
	if query.Message == nil {
		return nil
	}
	chatID, messageID := query.Message.Chat.ID, query.Message.MessageID

	switch query.Data {
	case addIncomeData, addExpenseData:
		kind := model.Income
		if query.Data == addExpenseData {
			kind = model.Expense
		}
		prompt, err := f.finance.HandleBegin(ctx, f.userID, kind)
		if err != nil {
			return err
		}
		return f.bot.editMessage(chatID, messageID, promptText(prompt), nil)
	case statsData:
		summary, err := f.finance.HandleStats(ctx, f.userID)
		if err != nil {
			return f.failure(chatID, err)
		}
		return f.bot.editMessage(chatID, messageID, StatsText(summary), backMenu())
	case backData:
		f.finance.HandleReset(ctx, f.userID)
		return f.bot.editMessage(chatID, messageID, menuText, f.bot.mainMenu(f.userID))
	default:
		logrus.Debugf("unknown callback data: %s", query.Data)
		return nil
	}
}

func (f *Finance) handleText(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	outcome, err := f.finance.HandleText(ctx, f.userID, message.Text)
	if err != nil {
		return f.failure(chatID, err)
	}

	switch outcome.Result {
	case model.EntryRecorded:
		addData := addIncomeData
		if outcome.Entry.Kind == model.Expense {
			addData = addExpenseData
		}
		return f.bot.sendMessage(chatID, recordedText(*outcome.Entry), recordedMenu(addData))
	case model.ParseFailed:
		return f.bot.sendMessage(chatID, parseErrorText(outcome.Reason), nil)
	default:
		return f.bot.sendMessage(chatID, notAwaitingText, nil)
	}
}

// failure logs the error and tells the user that something went wrong
func (f *Finance) failure(chatID int64, err error) error {
	logrus.Errorf("finance consumer for user %s: %v", f.userID, err)
	return f.bot.sendMessage(chatID, failureText, nil)
}
