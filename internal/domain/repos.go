package domain

import (
	"context"

	"driver-buddy/internal/model"
)

// PayRepo stores pay-history records. Save is an upsert keyed by record id.
type PayRepo interface {
	ListPays(ctx context.Context, userID int64) ([]model.DailyPay, error)
	SavePay(ctx context.Context, userID int64, p model.DailyPay) error
	DeletePay(ctx context.Context, userID int64, id string) error
	ReplacePays(ctx context.Context, userID int64, pays []model.DailyPay) error
}

// EntryRepo stores the active, not yet submitted time entries.
type EntryRepo interface {
	ListEntries(ctx context.Context, userID int64) ([]model.TimeEntry, error)
	AddEntry(ctx context.Context, userID int64, e model.TimeEntry) (model.TimeEntry, error)
	DeleteEntry(ctx context.Context, userID int64, id int64) error
	ClearEntries(ctx context.Context, userID int64) error
}

type SubmissionRepo interface {
	ListSubmissions(ctx context.Context, userID int64) ([]model.DailySubmission, error)
	AddSubmission(ctx context.Context, userID int64, s model.DailySubmission) error
}

// SettingsRepo returns ok=false when the user has never saved settings.
type SettingsRepo interface {
	GetSettings(ctx context.Context, userID int64) (model.Settings, bool, error)
	SaveSettings(ctx context.Context, userID int64, s model.Settings) error
}

type DriverRepo interface {
	GetAllDrivers(ctx context.Context) ([]model.Driver, error)
	GetDriverByID(ctx context.Context, id int64) (model.Driver, error)
	CreateOrUpdateDriver(ctx context.Context, d model.Driver) error
}

// DataStore is everything that follows the user's storage mode.
type DataStore interface {
	PayRepo
	EntryRepo
	SubmissionRepo
}
