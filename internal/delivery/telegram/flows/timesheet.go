package flows

import (
	"context"
	"log"
	"strconv"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/delivery/telegram/keyboards"
	"driver-buddy/internal/delivery/telegram/middleware"
	"driver-buddy/internal/delivery/telegram/router"
	"driver-buddy/internal/delivery/telegram/views"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/compliance"
)

// ShowEntries renders today's working set with its action buttons.
func ShowEntries(c telebot.Context, d *Deps) error {
	userID := c.Sender().ID
	entries, err := Call(d, func(ctx context.Context) ([]model.TimeEntry, error) {
		return d.Time.ListEntries(ctx, userID)
	})
	if err != nil {
		return Fail(c, "time", err)
	}
	return middleware.EditOrSend(c, views.FormatEntries(entries), keyboards.BuildEntriesKeyboard(entries))
}

func RegisterTimesheet(r *router.CallbackRouter, d *Deps) {
	r.Register(keyboards.KeyEntryDel, func(c telebot.Context, payload string) error {
		id, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil
		}
		userID := c.Sender().ID
		_, err = Call(d, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, d.Time.DeleteEntry(ctx, userID, id)
		})
		if err != nil {
			return Fail(c, "time", err)
		}
		log.Printf("[time] user=%d deleted entry %d", userID, id)
		return ShowEntries(c, d)
	})

	r.Register(keyboards.KeySubmitDay, func(c telebot.Context, payload string) error {
		userID := c.Sender().ID
		sub, err := Call(d, func(ctx context.Context) (model.DailySubmission, error) {
			return d.Time.SubmitDay(ctx, userID, d.now())
		})
		if err != nil {
			return Fail(c, "time", err)
		}
		log.Printf("[time] user=%d submitted %s (%d min)", userID, sub.Date, sub.TotalMinutes)
		return middleware.EditOrSend(c, views.FormatSubmission(sub), nil)
	})

	r.Register(keyboards.KeyCompliance, func(c telebot.Context, payload string) error {
		return ShowCompliance(c, d)
	})
}

func ShowCompliance(c telebot.Context, d *Deps) error {
	userID := c.Sender().ID
	rep, err := Call(d, func(ctx context.Context) (compliance.Report, error) {
		return d.Time.Compliance(ctx, userID)
	})
	if err != nil {
		return Fail(c, "compliance", err)
	}
	return c.Send(views.FormatCompliance(rep))
}
