package telegram

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/app/assistant"
	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/telegram/flows"
	"driver-buddy/internal/delivery/telegram/keyboards"
	"driver-buddy/internal/delivery/telegram/middleware"
	"driver-buddy/internal/delivery/telegram/router"
	"driver-buddy/internal/delivery/telegram/views"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/calendar"
	"driver-buddy/pkg/payroll"
	"driver-buddy/pkg/period"
)

var entryPattern = regexp.MustCompile(`^\d{4}\s*-\s*\d{4}$`)

type step int

const (
	stepIdle step = iota
	stepPayStandard
	stepPayOvertime
	stepEntry
	stepSetting
	stepAssistant
)

// chatState is the in-progress wizard for one chat.
type chatState struct {
	step  step
	date  time.Time
	input payroll.PayInput
	field string
}

type Handler struct {
	Bot      *telebot.Bot
	Router   *router.CallbackRouter
	Drivers  *service.DriverService
	Calendar *calendar.CalendarController
	Deps     *flows.Deps

	mu     sync.Mutex
	states map[int64]*chatState
}

func NewHandler(bot *telebot.Bot, drivers *service.DriverService, deps *flows.Deps) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	h := &Handler{
		Bot:     bot,
		Router:  router.New(),
		Drivers: drivers,
		Deps:    deps,
		states:  make(map[int64]*chatState),
	}
	h.Calendar = &calendar.CalendarController{OnDate: h.startPayWizard, Now: deps.Now}
	return h
}

func (h *Handler) state(chatID int64) chatState {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.states[chatID]; ok {
		return *s
	}
	return chatState{}
}

func (h *Handler) setState(chatID int64, s chatState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.step == stepIdle {
		delete(h.states, chatID)
		return
	}
	h.states[chatID] = &s
}

func (h *Handler) reset(chatID int64) {
	h.setState(chatID, chatState{})
}

func (h *Handler) Register() {
	h.Bot.Use(middleware.EnsureDriver(h.Drivers))

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/help", h.handleStart)
	h.Bot.Handle("/cancel", h.handleCancel)
	h.Bot.Handle("/limits", func(c telebot.Context) error { return flows.ShowCompliance(c, h.Deps) })

	h.Router.Register(keyboards.KeyPayToday, func(c telebot.Context, _ string) error {
		return h.startPayWizard(h.Deps.Now(), c)
	})
	h.Router.Register(keyboards.KeyPayOther, func(c telebot.Context, _ string) error {
		return h.Calendar.ShowCalendar(c)
	})
	h.Router.Register(keyboards.KeyEntryAdd, func(c telebot.Context, _ string) error {
		h.setState(c.Chat().ID, chatState{step: stepEntry})
		return c.Send("Send the shift as HHMM-HHMM, e.g. 0600-1430.")
	})
	h.Router.RegisterPrefix(calendar.Prefix, h.Calendar.HandleCallback)

	flows.RegisterHistory(h.Router, h.Deps)
	flows.RegisterTimesheet(h.Router, h.Deps)
	flows.RegisterSettings(h.Router, h.Deps, h.promptSetting)
	h.Router.Attach(h.Bot)

	h.Bot.Handle(telebot.OnText, h.handleText)
}

func (h *Handler) handleStart(c telebot.Context) error {
	h.reset(c.Chat().ID)
	name := c.Sender().FirstName
	if name == "" {
		name = "driver"
	}
	return c.Send("Hi "+name+"! I track your shifts, pay and driving limits.\n\n"+assistant.Answer("help"), keyboards.MainMenu())
}

func (h *Handler) handleCancel(c telebot.Context) error {
	h.reset(c.Chat().ID)
	return c.Send("Cancelled.", keyboards.MainMenu())
}

func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	// Menu buttons always win over a half-finished wizard.
	if keyboards.IsMenu(text) {
		h.reset(chatID)
		return h.handleMenu(c, text)
	}

	st := h.state(chatID)
	switch st.step {
	case stepPayStandard, stepPayOvertime:
		return h.continuePayWizard(c, st, text)
	case stepEntry:
		return h.addEntry(c, text)
	case stepSetting:
		return h.applySetting(c, st, text)
	case stepAssistant:
		return c.Send(assistant.Answer(text))
	}

	// Bare "HHMM-HHMM" works without pressing Add first.
	if entryPattern.MatchString(text) {
		return h.addEntry(c, text)
	}
	return c.Send(assistant.Answer(text), keyboards.MainMenu())
}

func (h *Handler) handleMenu(c telebot.Context, text string) error {
	switch text {
	case keyboards.BtnTime.Text:
		return flows.ShowEntries(c, h.Deps)
	case keyboards.BtnPay.Text:
		return c.Send("Which day is this pay for?", keyboards.BuildPayDateKeyboard())
	case keyboards.BtnHistory.Text:
		return flows.ShowHistory(c, h.Deps, period.Week, h.Deps.Now())
	case keyboards.BtnSettings.Text:
		return flows.ShowSettings(c, h.Deps)
	case keyboards.BtnAssistant.Text:
		h.setState(c.Chat().ID, chatState{step: stepAssistant})
		return c.Send("Ask me anything about driving hours, breaks, overtime, tax or NI. Press a menu button to leave.")
	}
	return nil
}

func (h *Handler) startPayWizard(date time.Time, c telebot.Context) error {
	chatID := c.Chat().ID
	h.setState(chatID, chatState{step: stepPayStandard, date: date})
	log.Printf("[pay] chat=%d wizard started for %s", chatID, date.Format(period.DateLayout))
	return middleware.EditOrSend(c, "Pay for "+date.Format("Mon 2 Jan 2006")+".\nHow many standard hours? (e.g. 8 or 8:30)", nil)
}

func (h *Handler) continuePayWizard(c telebot.Context, st chatState, text string) error {
	hours, mins, err := views.ParseHours(text)
	if err != nil {
		return c.Send("Please send hours like 8, 8:30 or 7.5.")
	}
	chatID := c.Chat().ID

	if st.step == stepPayStandard {
		st.input.Date = st.date.Format(period.DateLayout)
		st.input.StandardHours, st.input.StandardMinutes = hours, mins
		st.step = stepPayOvertime
		h.setState(chatID, st)
		return c.Send("Any overtime? Send hours, or 0 for none.")
	}

	st.input.OvertimeHours, st.input.OvertimeMinutes = hours, mins
	h.reset(chatID)

	userID := c.Sender().ID
	in := st.input
	type saved struct {
		pay      model.DailyPay
		currency string
	}
	res, err := flows.Call(h.Deps, func(ctx context.Context) (saved, error) {
		s, err := h.Deps.Settings.Load(ctx, userID)
		if err != nil {
			return saved{}, err
		}
		in.StandardRate, in.OvertimeRate = s.StandardRate(), s.OvertimeRate()
		p, err := h.Deps.Pay.Save(ctx, userID, in)
		return saved{pay: p, currency: s.Currency}, err
	})
	if err != nil {
		return flows.Fail(c, "pay", err)
	}
	log.Printf("[pay] user=%d saved %s total=%.2f", userID, res.pay.Date, res.pay.TotalPay)
	return c.Send(views.FormatPay(res.pay, res.currency), keyboards.MainMenu())
}

func (h *Handler) addEntry(c telebot.Context, text string) error {
	start, end, err := service.ParseEntry(text)
	if err != nil {
		return c.Send(flows.Explain(err))
	}
	userID := c.Sender().ID
	_, err = flows.Call(h.Deps, func(ctx context.Context) (model.TimeEntry, error) {
		return h.Deps.Time.AddEntry(ctx, userID, start, end)
	})
	if err != nil {
		return flows.Fail(c, "time", err)
	}
	h.reset(c.Chat().ID)
	log.Printf("[time] user=%d added %s-%s", userID, start, end)
	return flows.ShowEntries(c, h.Deps)
}

var settingPrompts = map[string]string{
	keyboards.SetStdRate:     "Send the standard hourly rate, e.g. 12.50.",
	keyboards.SetOTRate:      "Send the overtime hourly rate, e.g. 18.75.",
	keyboards.SetTaxRate:     "Send the tax rate as a percentage, e.g. 20.",
	keyboards.SetWeeklyGoal:  "Send your weekly pay goal, or 0 to clear it.",
	keyboards.SetMonthlyGoal: "Send your monthly pay goal, or 0 to clear it.",
}

func (h *Handler) promptSetting(c telebot.Context, field string) error {
	prompt, ok := settingPrompts[field]
	if !ok {
		return nil
	}
	h.setState(c.Chat().ID, chatState{step: stepSetting, field: field})
	return c.Send(prompt)
}

func (h *Handler) applySetting(c telebot.Context, st chatState, text string) error {
	v, err := views.ParseAmount(text)
	if err != nil {
		return c.Send("Please send a number, e.g. 12.50.")
	}
	userID := c.Sender().ID
	_, err = flows.Call(h.Deps, func(ctx context.Context) (model.Settings, error) {
		return h.Deps.Settings.Mutate(ctx, userID, func(s *model.Settings) { flows.ApplyValue(s, st.field, v) })
	})
	if err != nil {
		return flows.Fail(c, "settings", err)
	}
	h.reset(c.Chat().ID)
	log.Printf("[settings] user=%d set %s", userID, st.field)
	return flows.ShowSettings(c, h.Deps)
}
