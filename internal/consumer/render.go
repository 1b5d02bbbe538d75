package consumer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chucky-1/finance-ledger/internal/model"
)

const (
	menuText        = "Kerakli bo'limni tanlang:"
	notAwaitingText = "Iltimos, /start buyrug'ini yuboring"
	failureText     = "❌ Xatolik yuz berdi. Qaytadan urinib ko'ring."
	emptyHistory    = "📋 Hali hech qanday operatsiya yo'q"
)

var statusTexts = map[model.Status]string{
	model.Excellent: "🟢 A'lo! Yaxshi tejayapsiz!",
	model.Good:      "🟡 Yaxshi, lekin ko'proq tejamoqchi bo'lsangiz mumkin",
	model.Caution:   "🟠 Ehtiyot bo'ling! Xarajatlaringiz ko'p",
	model.Danger:    "🔴 Xavfli! Xarajatlar daromaddan oshib ketgan!",
}

func welcomeText(name string) string {
	return fmt.Sprintf("🎉 Assalomu alaykum, %s!\n\n"+
		"Men sizning moliyaviy botingizman.\n"+
		"Daromad va xarajatlaringizni kuzatishda yordam beraman.\n\n"+
		"📌 Quyidagi tugmalardan foydalaning:", name)
}

func promptText(prompt model.Prompt) string {
	title := "💰 Daromad kiritish:"
	if prompt.Kind == model.Expense {
		title = "💸 Xarajat kiritish:"
	}
	return fmt.Sprintf("%s\n\nFormat: summa kategoriya izoh\nMisol: %s\n\nKategoriyalar: %s",
		title, prompt.Example, strings.Join(prompt.Categories, ", "))
}

func recordedText(entry model.Entry) string {
	title := "💰 Daromad"
	if entry.Kind == model.Expense {
		title = "💸 Xarajat"
	}
	return fmt.Sprintf("✅ %s qo'shildi!\n\nSumma: %s so'm\nKategoriya: %s\nIzoh: %s",
		title, formatAmount(entry.Amount), entry.Category, entry.Description)
}

func parseErrorText(reason model.ParseReason) string {
	if reason == model.InvalidAmount {
		return "❌ Summani musbat raqam formatida kiriting!"
	}
	return "❌ Noto'g'ri format! Iltimos, qaytadan kiriting."
}

// StatsText renders the summary the way the bot sends it
func StatsText(summary model.Summary) string {
	var b strings.Builder
	b.WriteString("📊 MOLIYAVIY STATISTIKA\n\n")
	fmt.Fprintf(&b, "💰 Jami daromad: %s so'm\n", formatAmount(summary.TotalIncome))
	fmt.Fprintf(&b, "💸 Jami xarajat: %s so'm\n", formatAmount(summary.TotalExpense))
	fmt.Fprintf(&b, "💵 Balans: %s so'm\n\n", formatAmount(summary.Balance))
	b.WriteString(statusTexts[summary.Status])
	b.WriteString("\n\n📈 Xarajatlar kategoriya bo'yicha:\n")
	for _, c := range summary.ByCategory {
		fmt.Fprintf(&b, "\n%s: %s so'm (%.1f%%)", c.Name, formatAmount(c.Amount), c.Percentage)
	}
	fmt.Fprintf(&b, "\n\n📝 Jami operatsiyalar: %d", summary.TransactionCount)
	return b.String()
}

// HistoryText renders the recent transactions the way the bot sends them
func HistoryText(history model.History) string {
	if history.Empty {
		return emptyHistory
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 TARIX (oxirgi %d ta):\n\n", len(history.Transactions))
	for _, t := range history.Transactions {
		emoji := "💰"
		if t.Kind == model.Expense {
			emoji = "💸"
		}
		fmt.Fprintf(&b, "%s %s so'm - %s\n", emoji, formatAmount(t.Amount), t.Category)
		fmt.Fprintf(&b, "   📅 %s\n", t.Date)
		if t.Description != "" {
			fmt.Fprintf(&b, "   📝 %s\n", t.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAmount rounds to a whole number and groups thousands with commas
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if s == "0" {
		sign = ""
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
