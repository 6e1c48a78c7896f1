package model

// TimeEntry is one shift segment in the active working set.
type TimeEntry struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DailySubmission is the snapshot taken when a day's entries are finalised.
type DailySubmission struct {
	Date         string      `json:"date"`
	Timestamp    string      `json:"timestamp"`
	Entries      []TimeEntry `json:"entries"`
	TotalMinutes int         `json:"totalMinutes"`
}
