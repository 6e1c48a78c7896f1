package flows

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/telegram/keyboards"
	"driver-buddy/internal/delivery/telegram/middleware"
	"driver-buddy/internal/delivery/telegram/router"
	"driver-buddy/internal/delivery/telegram/views"
	"driver-buddy/pkg/calendar"
	"driver-buddy/pkg/period"
)

// ShowHistory renders the history page for kind around ref.
func ShowHistory(c telebot.Context, d *Deps, kind period.Kind, ref time.Time) error {
	userID := c.Sender().ID
	view, err := Call(d, func(ctx context.Context) (service.HistoryView, error) {
		return d.Pay.History(ctx, userID, kind, ref)
	})
	if err != nil {
		return Fail(c, "history", err)
	}
	return middleware.EditOrSend(c, views.FormatHistory(view), keyboards.BuildPeriodKeyboard(kind, ref))
}

func RegisterHistory(r *router.CallbackRouter, d *Deps) {
	r.Register(keyboards.KeyHistory, func(c telebot.Context, payload string) error {
		kind, ref := keyboards.ParseHistoryPayload(payload, d.now())
		return ShowHistory(c, d, kind, ref)
	})

	r.Register(keyboards.KeyMonthPick, func(c telebot.Context, payload string) error {
		year, err := strconv.Atoi(payload)
		if err != nil {
			year = d.now().Year()
		}
		title, markup := keyboards.BuildMonthKeyboard(year)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register(keyboards.KeyMonthYear, func(c telebot.Context, payload string) error {
		year, err := strconv.Atoi(payload)
		if err != nil {
			return nil
		}
		title, markup := keyboards.BuildMonthKeyboard(year)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register(keyboards.KeyPickMonth, func(c telebot.Context, payload string) error {
		y, m, ok := calendar.ParseMonth(payload)
		if !ok {
			return nil
		}
		return ShowHistory(c, d, period.Month, time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC))
	})

	r.Register(keyboards.KeyExport, func(c telebot.Context, payload string) error {
		kind, ref := keyboards.ParseHistoryPayload(payload, d.now())
		userID := c.Sender().ID
		buf, err := Call(d, func(ctx context.Context) (*bytes.Buffer, error) {
			var buf bytes.Buffer
			err := d.Export.WriteCSV(ctx, &buf, userID, kind, ref)
			return &buf, err
		})
		if err != nil {
			return Fail(c, "export", err)
		}
		log.Printf("[export] user=%d period=%s ref=%s bytes=%d", userID, kind, ref.Format(period.DateLayout), buf.Len())
		doc := &telebot.Document{
			File:     telebot.FromReader(buf),
			FileName: exportName(kind, ref),
			MIME:     "text/csv",
			Caption:  "Pay export",
		}
		return c.Send(doc)
	})
}

func exportName(kind period.Kind, ref time.Time) string {
	switch kind {
	case period.Month:
		return fmt.Sprintf("pay-%s.csv", ref.Format("2006-01"))
	case period.All:
		return "pay-all.csv"
	default:
		return fmt.Sprintf("pay-week-%s.csv", ref.Format(period.DateLayout))
	}
}
