package service

import (
	"context"
	"fmt"
	"strings"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/period"
)

type SettingsService struct {
	Repo domain.SettingsRepo
}

func NewSettingsService(repo domain.SettingsRepo) *SettingsService {
	return &SettingsService{Repo: repo}
}

// Load returns the user's settings with defaults filled in for anything
// missing.
func (s *SettingsService) Load(ctx context.Context, userID int64) (model.Settings, error) {
	stored, ok, err := s.Repo.GetSettings(ctx, userID)
	if err != nil {
		return model.DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return model.DefaultSettings(), nil
	}
	return withDefaults(stored), nil
}

func withDefaults(s model.Settings) model.Settings {
	def := model.DefaultSettings()
	if !period.ValidWeekStart(s.WeekStartDay) {
		s.WeekStartDay = def.WeekStartDay
	}
	if s.StandardRates == nil {
		s.StandardRates = def.StandardRates
	}
	if s.OvertimeRates == nil {
		s.OvertimeRates = def.OvertimeRates
	}
	if s.Currency == "" {
		s.Currency = def.Currency
	}
	if s.StorageMode != model.StorageCloud {
		s.StorageMode = model.StorageLocal
	}
	return s
}

// Validate normalises s and rejects values the rest of the app cannot use.
func Validate(s model.Settings) (model.Settings, error) {
	s.WeekStartDay = strings.ToLower(strings.TrimSpace(s.WeekStartDay))
	if !period.ValidWeekStart(s.WeekStartDay) {
		return s, fmt.Errorf("%w: unknown week start day %q", domain.ErrInvalidSettings, s.WeekStartDay)
	}
	if s.StorageMode != model.StorageLocal && s.StorageMode != model.StorageCloud {
		return s, fmt.Errorf("%w: storage mode must be local or cloud", domain.ErrInvalidSettings)
	}
	if s.TaxRate < 0 || s.TaxRate > 1 {
		return s, fmt.Errorf("%w: tax rate must be between 0 and 1", domain.ErrInvalidSettings)
	}
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Currency == "" {
		s.Currency = model.DefaultSettings().Currency
	}
	if s.StandardRates == nil {
		s.StandardRates = []model.RatePreset{}
	}
	if s.OvertimeRates == nil {
		s.OvertimeRates = []model.RatePreset{}
	}
	return s, nil
}

func (s *SettingsService) Save(ctx context.Context, userID int64, settings model.Settings) (model.Settings, error) {
	settings, err := Validate(settings)
	if err != nil {
		return settings, err
	}
	if err := s.Repo.SaveSettings(ctx, userID, settings); err != nil {
		return settings, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// Mutate loads the settings, applies fn and persists the result.
func (s *SettingsService) Mutate(ctx context.Context, userID int64, fn func(*model.Settings)) (model.Settings, error) {
	current, err := s.Load(ctx, userID)
	if err != nil {
		return current, err
	}
	fn(&current)
	return s.Save(ctx, userID, current)
}

// NextWeekStart cycles sunday -> monday -> ... -> saturday -> sunday.
func NextWeekStart(name string) string {
	wd := period.ParseWeekStart(name)
	return period.WeekdayName((wd + 1) % 7)
}
