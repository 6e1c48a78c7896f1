package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/payroll"
	"driver-buddy/pkg/period"
)

type PayService struct {
	Repo     domain.PayRepo
	Settings *SettingsService
	Now      func() time.Time
	NewID    func() string
}

func NewPayService(repo domain.PayRepo, settings *SettingsService) *PayService {
	return &PayService{Repo: repo, Settings: settings, Now: time.Now, NewID: uuid.NewString}
}

// HistoryView is one page of the pay-history screen.
type HistoryView struct {
	Period   period.Kind        `json:"period"`
	Label    string             `json:"label"`
	Start    string             `json:"start,omitempty"`
	End      string             `json:"end,omitempty"`
	Totals   payroll.Totals     `json:"totals"`
	Duration string             `json:"duration"`
	Groups   []payroll.DayGroup `json:"groups"`
	Goal     float64            `json:"goal"`
	Progress float64            `json:"progress"`
	Currency string             `json:"currency"`
}

func checkDate(s string) error {
	if _, err := period.ParseDate(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return nil
}

// Save computes a new pay record from the driver's input and stores it.
func (s *PayService) Save(ctx context.Context, userID int64, in payroll.PayInput) (model.DailyPay, error) {
	if err := checkDate(in.Date); err != nil {
		return model.DailyPay{}, err
	}
	settings, err := s.Settings.Load(ctx, userID)
	if err != nil {
		return model.DailyPay{}, err
	}
	p := payroll.ComputePay(in, payroll.OptionsFromSettings(settings))
	now := s.Now()
	p.ID = s.NewID()
	p.Timestamp = now.UTC().Format(time.RFC3339)
	p.SubmissionTime = now.Format("15:04")

	if err := s.Repo.SavePay(ctx, userID, p); err != nil {
		return p, fmt.Errorf("save pay: %w", err)
	}
	return p, nil
}

// Edit replaces an existing record, recomputing every derived field.
func (s *PayService) Edit(ctx context.Context, userID int64, id string, in payroll.PayInput) (model.DailyPay, error) {
	if err := checkDate(in.Date); err != nil {
		return model.DailyPay{}, err
	}
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return model.DailyPay{}, err
	}
	settings, err := s.Settings.Load(ctx, userID)
	if err != nil {
		return model.DailyPay{}, err
	}
	p := payroll.ComputePay(in, payroll.OptionsFromSettings(settings))
	p.ID = existing.ID
	p.Timestamp = existing.Timestamp
	p.SubmissionTime = existing.SubmissionTime

	if err := s.Repo.SavePay(ctx, userID, p); err != nil {
		return p, fmt.Errorf("edit pay %s: %w", id, err)
	}
	return p, nil
}

func (s *PayService) Get(ctx context.Context, userID int64, id string) (model.DailyPay, error) {
	pays, err := s.Repo.ListPays(ctx, userID)
	if err != nil {
		return model.DailyPay{}, err
	}
	for _, p := range pays {
		if p.ID == id {
			return p, nil
		}
	}
	return model.DailyPay{}, fmt.Errorf("pay %s: %w", id, domain.ErrNotFound)
}

func (s *PayService) Delete(ctx context.Context, userID int64, id string) error {
	return s.Repo.DeletePay(ctx, userID, id)
}

func (s *PayService) List(ctx context.Context, userID int64) ([]model.DailyPay, error) {
	return s.Repo.ListPays(ctx, userID)
}

// History resolves the period around ref and rolls up the records in it.
func (s *PayService) History(ctx context.Context, userID int64, kind period.Kind, ref time.Time) (HistoryView, error) {
	settings, err := s.Settings.Load(ctx, userID)
	if err != nil {
		return HistoryView{}, err
	}
	pays, err := s.Repo.ListPays(ctx, userID)
	if err != nil {
		return HistoryView{}, fmt.Errorf("load pay history: %w", err)
	}
	return BuildHistory(pays, settings, kind, ref), nil
}

// BuildHistory is the pure part of History.
func BuildHistory(pays []model.DailyPay, settings model.Settings, kind period.Kind, ref time.Time) HistoryView {
	weekStart := period.ParseWeekStart(settings.WeekStartDay)
	rng := period.ResolveRange(kind, ref, weekStart)
	inPeriod := payroll.FilterByPeriod(pays, rng)
	totals := payroll.Aggregate(inPeriod, payroll.OptionsFromSettings(settings))

	view := HistoryView{
		Period:   kind,
		Label:    period.Label(kind, ref, weekStart),
		Totals:   totals,
		Duration: totals.Duration(),
		Groups:   payroll.SortedGroups(inPeriod),
		Currency: settings.Currency,
	}
	if !rng.Unbounded {
		view.Start = rng.Start.Format(period.DateLayout)
		view.End = rng.End.Format(period.DateLayout)
	}
	switch kind {
	case period.Week:
		view.Goal = settings.WeeklyGoal
	case period.Month:
		view.Goal = settings.MonthlyGoal
	}
	view.Progress = payroll.Progress(totals.Net, view.Goal)
	return view
}
