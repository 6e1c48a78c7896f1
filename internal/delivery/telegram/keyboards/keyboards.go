package keyboards

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/period"
)

// Callback keys.
const (
	KeyHistory    = "hist"
	KeyExport     = "export"
	KeyMonthPick  = "month_pick"
	KeyMonthYear  = "month_year"
	KeyPickMonth  = "pick_month"
	KeyPayToday   = "pay_today"
	KeyPayOther   = "pay_other"
	KeyEntryAdd   = "entry_add"
	KeyEntryDel   = "entry_del"
	KeySubmitDay  = "submit_day"
	KeyCompliance = "compliance"
	KeySetting    = "set"
)

// Settings actions carried as the payload of KeySetting.
const (
	SetTax         = "tax"
	SetNI          = "ni"
	SetWeekStart   = "week"
	SetStorage     = "storage"
	SetWeeklyGoal  = "wgoal"
	SetMonthlyGoal = "mgoal"
	SetStdRate     = "stdrate"
	SetOTRate      = "otrate"
	SetTaxRate     = "taxrate"
)

// Reply-keyboard menu buttons.
var (
	BtnTime      = telebot.Btn{Text: "⏱ Time"}
	BtnPay       = telebot.Btn{Text: "💷 Pay"}
	BtnHistory   = telebot.Btn{Text: "📊 History"}
	BtnSettings  = telebot.Btn{Text: "⚙️ Settings"}
	BtnAssistant = telebot.Btn{Text: "💬 Assistant"}
)

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnTime.Text), markup.Text(BtnPay.Text)),
		markup.Row(markup.Text(BtnHistory.Text), markup.Text(BtnSettings.Text)),
		markup.Row(markup.Text(BtnAssistant.Text)),
	)
	return markup
}

// IsMenu reports whether text is one of the menu buttons.
func IsMenu(text string) bool {
	switch text {
	case BtnTime.Text, BtnPay.Text, BtnHistory.Text, BtnSettings.Text, BtnAssistant.Text:
		return true
	}
	return false
}

// HistoryPayload encodes a period and reference date as "week|2024-06-10".
func HistoryPayload(kind period.Kind, ref time.Time) string {
	return string(kind) + "|" + ref.Format(period.DateLayout)
}

// ParseHistoryPayload is the inverse of HistoryPayload. A missing or bad date
// falls back to now.
func ParseHistoryPayload(payload string, now time.Time) (period.Kind, time.Time) {
	kindStr, dateStr, _ := strings.Cut(payload, "|")
	ref, err := period.ParseDate(dateStr)
	if err != nil {
		ref = now
	}
	return period.ParseKind(kindStr), ref
}

// BuildPeriodKeyboard is the history navigation: period switch, prev/next
// (hidden for all-time) and export.
func BuildPeriodKeyboard(kind period.Kind, ref time.Time) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	label := func(k period.Kind, text string) string {
		if k == kind {
			return "• " + text
		}
		return text
	}
	rows := []telebot.Row{markup.Row(
		markup.Data(label(period.Week, "Week"), KeyHistory, HistoryPayload(period.Week, ref)),
		markup.Data(label(period.Month, "Month"), KeyHistory, HistoryPayload(period.Month, ref)),
		markup.Data(label(period.All, "All"), KeyHistory, HistoryPayload(period.All, ref)),
	)}
	if kind != period.All {
		rows = append(rows, markup.Row(
			markup.Data("◀ Prev", KeyHistory, HistoryPayload(kind, period.Navigate(kind, ref, -1))),
			markup.Data("Next ▶", KeyHistory, HistoryPayload(kind, period.Navigate(kind, ref, 1))),
		))
	}
	rows = append(rows, markup.Row(
		markup.Data("📅 Month…", KeyMonthPick, strconv.Itoa(ref.Year())),
		markup.Data("⬇️ CSV", KeyExport, HistoryPayload(kind, ref)),
	))
	markup.Inline(rows...)
	return markup
}

func BuildPayDateKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Today", KeyPayToday),
		markup.Data("Other date", KeyPayOther),
	))
	return markup
}

// BuildEntriesKeyboard offers a delete button per entry plus add and submit.
func BuildEntriesKeyboard(entries []model.TimeEntry) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{}
	for _, e := range entries {
		text := "🗑 " + e.StartTime + "-" + e.EndTime
		rows = append(rows, markup.Row(markup.Data(text, KeyEntryDel, strconv.FormatInt(e.ID, 10))))
	}
	actions := markup.Row(markup.Data("➕ Add", KeyEntryAdd))
	if len(entries) > 0 {
		actions = append(actions, markup.Data("✅ Submit today", KeySubmitDay))
	}
	rows = append(rows, actions, markup.Row(markup.Data("⚖️ Driving limits", KeyCompliance)))
	markup.Inline(rows...)
	return markup
}

func BuildSettingsKeyboard(s model.Settings) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	markup.Inline(
		markup.Row(
			markup.Data("Tax: "+onOff(s.EnableTax), KeySetting, SetTax),
			markup.Data("NI: "+onOff(s.EnableNI), KeySetting, SetNI),
		),
		markup.Row(
			markup.Data("Week starts: "+period.ParseWeekStart(s.WeekStartDay).String(), KeySetting, SetWeekStart),
			markup.Data("Storage: "+s.StorageMode, KeySetting, SetStorage),
		),
		markup.Row(
			markup.Data("Standard rate", KeySetting, SetStdRate),
			markup.Data("Overtime rate", KeySetting, SetOTRate),
			markup.Data("Tax rate", KeySetting, SetTaxRate),
		),
		markup.Row(
			markup.Data("Weekly goal", KeySetting, SetWeeklyGoal),
			markup.Data("Monthly goal", KeySetting, SetMonthlyGoal),
		),
	)
	return markup
}
