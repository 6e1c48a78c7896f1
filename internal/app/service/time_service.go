package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
	"driver-buddy/pkg/compliance"
	"driver-buddy/pkg/timesheet"
)

type TimeService struct {
	Entries     domain.EntryRepo
	Submissions domain.SubmissionRepo
	Now         func() time.Time
}

func NewTimeService(entries domain.EntryRepo, subs domain.SubmissionRepo) *TimeService {
	return &TimeService{Entries: entries, Submissions: subs, Now: time.Now}
}

// ParseEntry reads "HHMM-HHMM" as typed into the bot.
func ParseEntry(text string) (start, end string, err error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), " ", ""), "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected HHMM-HHMM", domain.ErrInvalidTime)
	}
	return parts[0], parts[1], nil
}

func (s *TimeService) AddEntry(ctx context.Context, userID int64, start, end string) (model.TimeEntry, error) {
	e := model.TimeEntry{StartTime: start, EndTime: end}
	if _, err := timesheet.EntryMinutes(e); err != nil {
		return e, fmt.Errorf("%w: %v", domain.ErrInvalidTime, err)
	}
	return s.Entries.AddEntry(ctx, userID, e)
}

func (s *TimeService) ListEntries(ctx context.Context, userID int64) ([]model.TimeEntry, error) {
	return s.Entries.ListEntries(ctx, userID)
}

func (s *TimeService) DeleteEntry(ctx context.Context, userID int64, id int64) error {
	return s.Entries.DeleteEntry(ctx, userID, id)
}

// SubmitDay snapshots the working set as the given day and clears it.
func (s *TimeService) SubmitDay(ctx context.Context, userID int64, date time.Time) (model.DailySubmission, error) {
	entries, err := s.Entries.ListEntries(ctx, userID)
	if err != nil {
		return model.DailySubmission{}, err
	}
	if len(entries) == 0 {
		return model.DailySubmission{}, domain.ErrNoEntries
	}
	sub := timesheet.Submit(date, entries, s.Now())
	if err := s.Submissions.AddSubmission(ctx, userID, sub); err != nil {
		return sub, fmt.Errorf("store submission: %w", err)
	}
	if err := s.Entries.ClearEntries(ctx, userID); err != nil {
		return sub, fmt.Errorf("clear entries: %w", err)
	}
	return sub, nil
}

func (s *TimeService) ListSubmissions(ctx context.Context, userID int64) ([]model.DailySubmission, error) {
	return s.Submissions.ListSubmissions(ctx, userID)
}

// Compliance checks every submitted day against the drivers' hours rules.
func (s *TimeService) Compliance(ctx context.Context, userID int64) (compliance.Report, error) {
	subs, err := s.Submissions.ListSubmissions(ctx, userID)
	if err != nil {
		return compliance.Report{}, err
	}
	return compliance.Check(subs), nil
}
