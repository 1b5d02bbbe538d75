// Package consumer connects the telegram bot to the finance service
package consumer

import (
	"fmt"
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	start   = "start"
	history = "history"
	stats   = "stats"
)

const (
	addIncomeData  = "add_income"
	addExpenseData = "add_expense"
	statsData      = "stats"
	backData       = "back"
)

// Bot sends requests to the telegram server every n seconds and if there are new messages it receives them
type Bot struct {
	bot       *tgbotapi.BotAPI
	webAppURL string
}

// NewBot creates the bot, an empty webAppURL hides the web app button of the main menu
func NewBot(bot *tgbotapi.BotAPI, webAppURL string) *Bot {
	return &Bot{
		bot:       bot,
		webAppURL: webAppURL,
	}
}

func (b *Bot) Updates(timeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	logrus.Infof("telegram bot %s started receiving updates", b.bot.Self.UserName)
	return b.bot.GetUpdatesChan(u)
}

func (b *Bot) Stop() {
	b.bot.StopReceivingUpdates()
}

func (b *Bot) sendMessage(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("sendMessage, telegram bot couldn't send message: %v", err)
	}
	return nil
}

func (b *Bot) editMessage(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	var msg tgbotapi.EditMessageTextConfig
	if markup != nil {
		msg = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	} else {
		msg = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("editMessage, telegram bot couldn't edit message: %v", err)
	}
	return nil
}

func (b *Bot) answerCallback(id string) error {
	_, err := b.bot.Request(tgbotapi.NewCallback(id, ""))
	if err != nil {
		return fmt.Errorf("answerCallback, telegram bot couldn't answer callback: %v", err)
	}
	return nil
}

func (b *Bot) mainMenu(userID string) *tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💰 Daromad qo'shish", addIncomeData)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💸 Xarajat qo'shish", addExpenseData)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Statistika", statsData)),
	}
	if b.webAppURL != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📱 Web App ochish", webAppLink(b.webAppURL, userID))))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

// webAppLink adds the user id to the query of the web app url
func webAppLink(base, userID string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("user_id", userID)
	u.RawQuery = q.Encode()
	return u.String()
}

func backMenu() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", backData)),
	)
	return &keyboard
}

// recordedMenu offers to add one more entry of the same kind
func recordedMenu(addData string) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Yana qo'shish", addData)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Statistika", statsData)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("◀️ Bosh menyu", backData)),
	)
	return &keyboard
}
