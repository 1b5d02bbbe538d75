package consumer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finance-ledger/internal/model"
	"github.com/chucky-1/finance-ledger/internal/repository"
	"github.com/chucky-1/finance-ledger/internal/service"
)

type sentMessage struct {
	method string
	text   string
	markup string
}

// telegramServer answers bot api calls and keeps the messages sent to every chat
type telegramServer struct {
	mu    sync.Mutex
	chats map[string][]sentMessage
}

func (s *telegramServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)
	if method == "getMe" {
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"ledger","username":"ledger_bot"}}`)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if chatID := r.PostForm.Get("chat_id"); chatID != "" {
		s.mu.Lock()
		s.chats[chatID] = append(s.chats[chatID], sentMessage{
			method: method,
			text:   r.PostForm.Get("text"),
			markup: r.PostForm.Get("reply_markup"),
		})
		s.mu.Unlock()
	}
	fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`)
}

func newTestBot(t *testing.T, webAppURL string) (*Bot, *telegramServer) {
	t.Helper()
	tgServer := &telegramServer{chats: make(map[string][]sentMessage)}
	server := httptest.NewServer(tgServer)
	t.Cleanup(server.Close)

	api, err := tgbotapi.NewBotAPIWithClient("token", server.URL+"/bot%s/%s", server.Client())
	if err != nil {
		t.Fatal(err)
	}
	return NewBot(api, webAppURL), tgServer
}

func textUpdate(id int, userID int64, text string) tgbotapi.Update {
	message := &tgbotapi.Message{
		MessageID: id,
		From:      &tgbotapi.User{ID: userID, FirstName: "Ali"},
		Chat:      &tgbotapi.Chat{ID: userID},
		Text:      text,
	}
	if text[0] == '/' {
		message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}
	return tgbotapi.Update{UpdateID: id, Message: message}
}

func callbackUpdate(id int, userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: id,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      fmt.Sprintf("cb-%d", id),
			From:    &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{MessageID: 1, Chat: &tgbotapi.Chat{ID: userID}},
			Data:    data,
		},
	}
}

func TestHub_Consume(t *testing.T) {
	bot, tgServer := newTestBot(t, "https://example.com/webapp.html")
	repo := repository.NewFileStorage(filepath.Join(t.TempDir(), "user_data.json"))
	finance := service.NewFinance(
		repo,
		repository.NewModesLocalStorage(),
		service.NewRecorder(validator.New()),
		service.NewReporter(repo, service.DefaultHistoryLimit),
	)

	updates := []tgbotapi.Update{
		textUpdate(1, 100, "/start"),
		callbackUpdate(2, 100, addExpenseData),
		textUpdate(3, 200, "10 maosh"),
		textUpdate(4, 100, "abc"),
		callbackUpdate(5, 200, addIncomeData),
		textUpdate(6, 100, "50000 oziq-ovqat Do'konda xarid"),
		textUpdate(7, 200, "1000 maosh"),
		textUpdate(8, 100, "hello world"),
		callbackUpdate(9, 100, backData),
	}
	updatesChan := make(chan tgbotapi.Update, len(updates))
	for _, update := range updates {
		updatesChan <- update
	}
	close(updatesChan)

	hub := NewHub(bot, updatesChan, finance, 1)
	hub.Consume(context.Background())

	expensePrompt := model.Prompt{Kind: model.Expense, Example: "50000 oziq-ovqat Do'konda xarid", Categories: model.ExpenseCategories}
	incomePrompt := model.Prompt{Kind: model.Income, Example: "500000 maosh Iyul oyi maoshi", Categories: model.IncomeCategories}

	first := tgServer.chats["100"]
	require.Equal(t, []string{
		welcomeText("Ali"),
		promptText(expensePrompt),
		parseErrorText(model.TooFewFields),
		recordedText(model.Entry{Amount: 50000, Category: "oziq-ovqat", Description: "Do'konda xarid", Kind: model.Expense}),
		notAwaitingText,
		menuText,
	}, texts(first))
	require.Equal(t, "editMessageText", first[1].method)
	require.Equal(t, "editMessageText", first[5].method)
	require.Contains(t, first[0].markup, "user_id=100")

	second := tgServer.chats["200"]
	require.Equal(t, []string{
		notAwaitingText,
		promptText(incomePrompt),
		recordedText(model.Entry{Amount: 1000, Category: "maosh", Kind: model.Income}),
	}, texts(second))

	ledgers, err := repo.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, ledgers["100"].Expense, 1)
	require.Len(t, ledgers["100"].Income, 0)
	require.Len(t, ledgers["200"].Income, 1)
	require.Equal(t, model.Idle, finance.Mode(context.Background(), "100"))
}

func TestHub_ConsumeStopsOnCancel(t *testing.T) {
	bot, _ := newTestBot(t, "")
	repo := repository.NewFileStorage(filepath.Join(t.TempDir(), "user_data.json"))
	finance := service.NewFinance(
		repo,
		repository.NewModesLocalStorage(),
		service.NewRecorder(validator.New()),
		service.NewReporter(repo, service.DefaultHistoryLimit),
	)

	updatesChan := make(chan tgbotapi.Update)
	hub := NewHub(bot, updatesChan, finance, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Consume(ctx)
		close(done)
	}()

	updatesChan <- textUpdate(1, 100, "/start")
	cancel()
	<-done
	require.Empty(t, hub.financeChannels)
}

func TestBot_MainMenu(t *testing.T) {
	bot, _ := newTestBot(t, "")
	require.Len(t, bot.mainMenu("100").InlineKeyboard, 3)

	bot, _ = newTestBot(t, "https://example.com/webapp.html?lang=uz")
	keyboard := bot.mainMenu("100").InlineKeyboard
	require.Len(t, keyboard, 4)
	require.Equal(t, "https://example.com/webapp.html?lang=uz&user_id=100", *keyboard[3][0].URL)
}

func texts(messages []sentMessage) []string {
	result := make([]string, 0, len(messages))
	for _, m := range messages {
		result = append(result, m.text)
	}
	return result
}
