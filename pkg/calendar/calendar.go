package calendar

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// Callback keys owned by the calendar. Anything starting with Prefix is
// routed to HandleCallback.
const (
	Prefix  = "cal_"
	KeyDay  = "cal_day"
	KeyPrev = "cal_prev"
	KeyNext = "cal_next"
)

// CalendarController renders an inline month grid and reports the picked day.
type CalendarController struct {
	OnDate func(time.Time, telebot.Context) error
	Now    func() time.Time
}

func (cc *CalendarController) now() time.Time {
	if cc.Now != nil {
		return cc.Now()
	}
	return time.Now()
}

// ShowCalendar sends or edits the calendar for the current month.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := cc.now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// BuildCalendar lays out the month as rows of 7 day buttons, padded so the
// first row starts on Monday, followed by a prev/next row.
func BuildCalendar(year, month int) (string, *telebot.ReplyMarkup) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), int(first.Month())

	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	header := telebot.Row{}
	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		header = append(header, markup.Data(d, "cal_noop"))
	}
	rows = append(rows, header)

	week := telebot.Row{}
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		week = append(week, markup.Data(" ", "cal_noop"))
	}
	for d := 1; d <= daysInMonth(year, month); d++ {
		payload := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		week = append(week, markup.Data(strconv.Itoa(d), KeyDay, payload))
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, markup.Data(" ", "cal_noop"))
		}
		rows = append(rows, week)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	rows = append(rows, telebot.Row{
		markup.Data("<", KeyPrev, prev.Format("2006-01")),
		markup.Data(">", KeyNext, next.Format("2006-01")),
	})
	markup.Inline(rows...)
	return "Pick a date: " + first.Format("January 2006"), markup
}

// SendCalendar edits the message behind a callback, or sends a new one.
func SendCalendar(c telebot.Context, year, month int) error {
	title, markup := BuildCalendar(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// HandleCallback serves the cal_* keys once the router has split them.
func (cc *CalendarController) HandleCallback(c telebot.Context, key, payload string) error {
	switch key {
	case KeyDay:
		date, err := time.Parse("2006-01-02", payload)
		if err != nil {
			log.Printf("[calendar] bad day payload %q: %v", payload, err)
			return c.Send("That date did not work, try again.")
		}
		if cc.OnDate == nil {
			return nil
		}
		return cc.OnDate(date, c)
	case KeyPrev, KeyNext:
		year, month, ok := ParseMonth(payload)
		if !ok {
			log.Printf("[calendar] bad month payload %q", payload)
			return nil
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

// ParseMonth reads a "YYYY-MM" payload.
func ParseMonth(payload string) (year, month int, ok bool) {
	parts := strings.Split(payload, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, m, true
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
