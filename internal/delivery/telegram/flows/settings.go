package flows

import (
	"context"
	"log"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/telegram/keyboards"
	"driver-buddy/internal/delivery/telegram/middleware"
	"driver-buddy/internal/delivery/telegram/router"
	"driver-buddy/internal/delivery/telegram/views"
	"driver-buddy/internal/model"
)

// PromptFunc asks the driver to type a value for one of the numeric settings.
type PromptFunc func(c telebot.Context, field string) error

func ShowSettings(c telebot.Context, d *Deps) error {
	userID := c.Sender().ID
	s, err := Call(d, func(ctx context.Context) (model.Settings, error) {
		return d.Settings.Load(ctx, userID)
	})
	if err != nil {
		return Fail(c, "settings", err)
	}
	return middleware.EditOrSend(c, views.FormatSettings(s), keyboards.BuildSettingsKeyboard(s))
}

// Toggle applies a one-tap settings change. It returns false for fields that
// need typed input.
func Toggle(s *model.Settings, field string) bool {
	switch field {
	case keyboards.SetTax:
		s.EnableTax = !s.EnableTax
	case keyboards.SetNI:
		s.EnableNI = !s.EnableNI
	case keyboards.SetWeekStart:
		s.WeekStartDay = service.NextWeekStart(s.WeekStartDay)
	case keyboards.SetStorage:
		if s.StorageMode == model.StorageCloud {
			s.StorageMode = model.StorageLocal
		} else {
			s.StorageMode = model.StorageCloud
		}
	default:
		return false
	}
	return true
}

func RegisterSettings(r *router.CallbackRouter, d *Deps, prompt PromptFunc) {
	r.Register(keyboards.KeySetting, func(c telebot.Context, field string) error {
		probe := model.DefaultSettings()
		if !Toggle(&probe, field) {
			return prompt(c, field)
		}
		userID := c.Sender().ID
		s, err := Call(d, func(ctx context.Context) (model.Settings, error) {
			return d.Settings.Mutate(ctx, userID, func(s *model.Settings) { Toggle(s, field) })
		})
		if err != nil {
			return Fail(c, "settings", err)
		}
		log.Printf("[settings] user=%d toggled %s", userID, field)
		return middleware.EditOrSend(c, views.FormatSettings(s), keyboards.BuildSettingsKeyboard(s))
	})
}

// ApplyValue stores a typed numeric setting. Rates replace the first preset,
// creating it when the list is empty. The tax rate is entered as a percentage.
func ApplyValue(s *model.Settings, field string, v float64) {
	switch field {
	case keyboards.SetWeeklyGoal:
		s.WeeklyGoal = v
	case keyboards.SetMonthlyGoal:
		s.MonthlyGoal = v
	case keyboards.SetTaxRate:
		s.TaxRate = v / 100
	case keyboards.SetStdRate:
		s.StandardRates = setFirstRate(s.StandardRates, "Standard", v)
	case keyboards.SetOTRate:
		s.OvertimeRates = setFirstRate(s.OvertimeRates, "Overtime", v)
	}
}

func setFirstRate(presets []model.RatePreset, name string, v float64) []model.RatePreset {
	out := append([]model.RatePreset(nil), presets...)
	if len(out) == 0 {
		return []model.RatePreset{{Name: name, Rate: v}}
	}
	out[0].Rate = v
	return out
}
