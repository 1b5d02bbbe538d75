package config

import "github.com/go-playground/validator/v10"

type Config struct {
	Telegram     Telegram
	LedgerFile   string `env:"LEDGER_FILE" envDefault:"user_data.json" validate:"required"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"10"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

type Telegram struct {
	Token   string `env:"TG_TOKEN,required"`
	Timeout int    `env:"TG_TIMEOUT" envDefault:"60" validate:"gte=0"`
	Debug   bool   `env:"TG_DEBUG" envDefault:"false"`
	// QueueSize is the number of updates buffered per user. When a user's queue is full
	// the hub waits for it, so one slow user delays the updates of everybody else.
	QueueSize int    `env:"USER_QUEUE_SIZE" envDefault:"16" validate:"gte=0"`
	WebAppURL string `env:"WEBAPP_URL" validate:"omitempty,url"`
}

// Validate checks the values the environment parser can't
func (c Config) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}
