package chemi

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/palemoky/name-chemi/internal/content"
)

var mondayWeek = &now.Config{WeekStartDay: time.Monday}

// DayForecast is the forecast for a single calendar day.
type DayForecast struct {
	Day       string            `json:"day"`
	Label     string            `json:"label"`
	EmojiPair content.EmojiPair `json:"emoji_pair"`
	Message   string            `json:"message"`
}

// Forecast covers Monday through Sunday of one week.
type Forecast struct {
	Names     Pair          `json:"names"`
	WeekStart string        `json:"week_start"`
	Forecasts []DayForecast `json:"forecasts"`
}

// WeekStart returns midnight of the Monday on or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	return mondayWeek.With(t).BeginningOfWeek()
}

// WeeklySeed builds the seed of a single forecast day. The "weekly:" prefix keeps
// forecast draws apart from the daily result of the same date.
func WeeklySeed(names Pair, dayKey string) string {
	return "weekly:" + Seed(names, dayKey)
}

// WeeklyForecast returns the forecast for the current week.
func (e *Engine) WeeklyForecast(nameA, nameB string) (*Forecast, error) {
	return e.WeeklyForecastAt(nameA, nameB, e.Today())
}

// WeeklyForecastAt returns the forecast for the week containing today.
func (e *Engine) WeeklyForecastAt(nameA, nameB string, today time.Time) (*Forecast, error) {
	names, _, err := normalizeInput(nameA, nameB)
	if err != nil {
		return nil, err
	}

	start := WeekStart(today)
	labels := e.pools.DayLabels()
	messages := e.pools.WeeklyMessages()
	emojis := e.pools.WeeklyEmojis()

	days := make([]DayForecast, content.DaysInWeek)
	for i := range days {
		dayKey := DateKey(start.AddDate(0, 0, i))
		h := Hash(WeeklySeed(names, dayKey))
		days[i] = DayForecast{
			Day:       dayKey,
			Label:     labels[i],
			EmojiPair: pick(h, emojis, offsetWeeklyEmoji),
			Message:   pick(h, messages, offsetWeeklyMessage),
		}
	}

	return &Forecast{
		Names:     names,
		WeekStart: DateKey(start),
		Forecasts: days,
	}, nil
}
