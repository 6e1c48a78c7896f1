package keyboards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-buddy/internal/model"
	"driver-buddy/pkg/period"
)

func TestHistoryPayloadRoundTrip(t *testing.T) {
	ref := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	kind, got := ParseHistoryPayload(HistoryPayload(period.Month, ref), now)
	assert.Equal(t, period.Month, kind)
	assert.True(t, got.Equal(ref))

	kind, got = ParseHistoryPayload("nonsense", now)
	assert.Equal(t, period.Week, kind)
	assert.True(t, got.Equal(now))
}

func TestBuildPeriodKeyboard(t *testing.T) {
	ref := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	week := BuildPeriodKeyboard(period.Week, ref).InlineKeyboard
	require.Len(t, week, 3)
	assert.Equal(t, "• Week", week[0][0].Text)
	assert.Equal(t, "week|2024-06-06", week[1][0].Data)
	assert.Equal(t, "week|2024-06-20", week[1][1].Data)
	assert.Equal(t, KeyExport, week[2][1].Unique)

	month := BuildPeriodKeyboard(period.Month, ref).InlineKeyboard
	assert.Equal(t, "month|2024-05-01", month[1][0].Data)

	all := BuildPeriodKeyboard(period.All, ref).InlineKeyboard
	assert.Len(t, all, 2, "all-time has no prev/next row")
}

func TestBuildMonthKeyboard(t *testing.T) {
	title, markup := BuildMonthKeyboard(2024)
	assert.Equal(t, "Pick a month: 2024", title)
	rows := markup.InlineKeyboard
	require.Len(t, rows, 5)
	assert.Equal(t, "2024-01", rows[0][0].Data)
	assert.Equal(t, "2024-12", rows[3][2].Data)
	assert.Equal(t, "2023", rows[4][0].Data)
	assert.Equal(t, "2025", rows[4][1].Data)
}

func TestBuildEntriesKeyboard(t *testing.T) {
	empty := BuildEntriesKeyboard(nil).InlineKeyboard
	require.Len(t, empty, 2)
	assert.Len(t, empty[0], 1, "no submit button without entries")

	rows := BuildEntriesKeyboard([]model.TimeEntry{{ID: 5, StartTime: "0600", EndTime: "1000"}}).InlineKeyboard
	require.Len(t, rows, 3)
	assert.Equal(t, "5", rows[0][0].Data)
	assert.Equal(t, KeySubmitDay, rows[1][1].Unique)
}

func TestIsMenu(t *testing.T) {
	assert.True(t, IsMenu(BtnHistory.Text))
	assert.False(t, IsMenu("0600-1000"))
}
