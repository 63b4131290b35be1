package chemi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  string
	}{
		{"monday", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "2024-06-10"},
		{"thursday", time.Date(2024, 6, 13, 15, 30, 0, 0, time.UTC), "2024-06-10"},
		{"sunday late", time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC), "2024-06-10"},
		{"across month", time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), "2024-02-26"},
		{"across year", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := WeekStart(tt.today)
			assert.Equal(t, tt.want, DateKey(start))
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestWeeklyForecastSnapshot(t *testing.T) {
	e := newTestEngine(t, time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC))

	forecast, err := e.WeeklyForecast("서연", "민준")
	require.NoError(t, err)

	assert.Equal(t, Pair{"민준", "서연"}, forecast.Names)
	assert.Equal(t, "2024-06-10", forecast.WeekStart)
	require.Len(t, forecast.Forecasts, 7)

	pools := e.Pools()
	messages := pools.WeeklyMessages()
	emojis := pools.WeeklyEmojis()

	wantDays := []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16"}
	wantMessage := []int{6, 5, 4, 3, 9, 8, 7}
	wantEmoji := []int{7, 0, 1, 2, 2, 3, 4}

	for i, day := range forecast.Forecasts {
		assert.Equal(t, wantDays[i], day.Day)
		assert.Equal(t, pools.DayLabels()[i], day.Label)
		assert.Equal(t, messages[wantMessage[i]], day.Message, "day %s", day.Day)
		assert.Equal(t, emojis[wantEmoji[i]], day.EmojiPair, "day %s", day.Day)
	}
	assert.Equal(t, "월", forecast.Forecasts[0].Label)
	assert.Equal(t, "일", forecast.Forecasts[6].Label)
}

func TestWeeklyForecastShape(t *testing.T) {
	e := newTestEngine(t, time.Now())
	pools := e.Pools()

	for _, today := range []time.Time{
		time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 26, 23, 0, 0, 0, time.FixedZone("KST", 9*60*60)),
	} {
		forecast, err := e.WeeklyForecastAt("하준", "지우", today)
		require.NoError(t, err)
		require.Len(t, forecast.Forecasts, 7)

		start, err := ParseDateKey(forecast.WeekStart)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, start.Weekday())

		for i, day := range forecast.Forecasts {
			assert.Equal(t, DateKey(start.AddDate(0, 0, i)), day.Day)
			assert.Contains(t, pools.WeeklyMessages(), day.Message)
			assert.Contains(t, pools.WeeklyEmojis(), day.EmojiPair)
		}
	}
}

func TestWeeklySeedIsSeparateNamespace(t *testing.T) {
	names := Pair{"민준", "서연"}
	assert.Equal(t, "weekly:민준+서연@2024-06-10", WeeklySeed(names, "2024-06-10"))
	assert.NotEqual(t, Hash(Seed(names, "2024-06-10")), Hash(WeeklySeed(names, "2024-06-10")))
}

func TestWeeklyForecastRejectsEmptyName(t *testing.T) {
	e := newTestEngine(t, time.Now())
	_, err := e.WeeklyForecast("", "서연")
	assert.ErrorIs(t, err, ErrEmptyName)
}
