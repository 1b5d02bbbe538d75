package consumer

import (
	"context"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-ledger/internal/service"
)

// Hub routes every update to the consumer of the user who sent it.
// Each user has one consumer goroutine, so updates of a user are handled in arrival order.
// A full user queue blocks the hub, which stalls routing for every user until it drains.
type Hub struct {
	bot             *Bot
	updatesChan     tgbotapi.UpdatesChannel
	financeService  *service.Finance
	queueSize       int
	financeChannels map[int64]chan tgbotapi.Update
	wg              sync.WaitGroup
}

func NewHub(bot *Bot, updatesChan tgbotapi.UpdatesChannel, financeService *service.Finance, queueSize int) *Hub {
	return &Hub{
		bot:             bot,
		updatesChan:     updatesChan,
		financeService:  financeService,
		queueSize:       queueSize,
		financeChannels: make(map[int64]chan tgbotapi.Update),
	}
}

// Consume blocks until ctx is done or the updates channel is closed, then closes the user queues
// and waits for the user consumers
func (h *Hub) Consume(ctx context.Context) {
	logrus.Info("hub consumer started")
	defer h.stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("hub consumer stopped: %v", ctx.Err())
			return
		case update, ok := <-h.updatesChan:
			if !ok {
				logrus.Info("hub consumer stopped: updates channel closed")
				return
			}
			user := update.SentFrom()
			if user == nil {
				logrus.Debugf("hub consumer skipped update %d without sender", update.UpdateID)
				continue
			}

			financeCh, ok := h.financeChannels[user.ID]
			if !ok {
				// first touch with the user
				logrus.Debugf("first touch with the user %d", user.ID)
				financeCh = h.startFinanceConsumer(ctx, user.ID)
			}

			select {
			case financeCh <- update:
			case <-ctx.Done():
				logrus.Infof("hub consumer stopped: %v", ctx.Err())
				return
			}
		}
	}
}

func (h *Hub) startFinanceConsumer(ctx context.Context, userID int64) chan tgbotapi.Update {
	financeChan := make(chan tgbotapi.Update, h.queueSize)
	h.financeChannels[userID] = financeChan
	financeConsumer := NewFinance(h.bot, strconv.FormatInt(userID, 10), financeChan, h.financeService)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		financeConsumer.Consume(ctx)
	}()
	return financeChan
}

func (h *Hub) stop() {
	for userID, financeChan := range h.financeChannels {
		close(financeChan)
		delete(h.financeChannels, userID)
	}
	h.wg.Wait()
}
