package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist for the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTime marks a time entry whose clock values are not HHMM.
	ErrInvalidTime = errors.New("invalid time entry")
	// ErrNoEntries is returned when a day is submitted with nothing logged.
	ErrNoEntries = errors.New("no time entries to submit")
	// ErrInvalidDate marks a date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidSettings marks a settings update that failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrCloudUnavailable is returned in cloud mode when no cloud store is configured.
	ErrCloudUnavailable = errors.New("cloud storage is not configured")
)
