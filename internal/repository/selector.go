package repository

import (
	"context"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

// Selector routes data calls to the local or cloud store according to the
// user's storage mode setting. Cloud may be nil when not configured.
type Selector struct {
	Settings domain.SettingsRepo
	Local    domain.DataStore
	Cloud    domain.DataStore
}

func NewSelector(settings domain.SettingsRepo, local, cloud domain.DataStore) *Selector {
	return &Selector{Settings: settings, Local: local, Cloud: cloud}
}

func (s *Selector) backend(ctx context.Context, userID int64) (domain.DataStore, error) {
	settings, ok, err := s.Settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok || settings.StorageMode != model.StorageCloud {
		return s.Local, nil
	}
	if s.Cloud == nil {
		return nil, domain.ErrCloudUnavailable
	}
	return s.Cloud, nil
}

func (s *Selector) ListPays(ctx context.Context, userID int64) ([]model.DailyPay, error) {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return nil, err
	}
	return b.ListPays(ctx, userID)
}

func (s *Selector) SavePay(ctx context.Context, userID int64, p model.DailyPay) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.SavePay(ctx, userID, p)
}

func (s *Selector) DeletePay(ctx context.Context, userID int64, id string) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.DeletePay(ctx, userID, id)
}

func (s *Selector) ReplacePays(ctx context.Context, userID int64, pays []model.DailyPay) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.ReplacePays(ctx, userID, pays)
}

func (s *Selector) ListEntries(ctx context.Context, userID int64) ([]model.TimeEntry, error) {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return nil, err
	}
	return b.ListEntries(ctx, userID)
}

func (s *Selector) AddEntry(ctx context.Context, userID int64, e model.TimeEntry) (model.TimeEntry, error) {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return e, err
	}
	return b.AddEntry(ctx, userID, e)
}

func (s *Selector) DeleteEntry(ctx context.Context, userID int64, id int64) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.DeleteEntry(ctx, userID, id)
}

func (s *Selector) ClearEntries(ctx context.Context, userID int64) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.ClearEntries(ctx, userID)
}

func (s *Selector) ListSubmissions(ctx context.Context, userID int64) ([]model.DailySubmission, error) {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return nil, err
	}
	return b.ListSubmissions(ctx, userID)
}

func (s *Selector) AddSubmission(ctx context.Context, userID int64, sub model.DailySubmission) error {
	b, err := s.backend(ctx, userID)
	if err != nil {
		return err
	}
	return b.AddSubmission(ctx, userID, sub)
}
