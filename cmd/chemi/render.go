package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/content"
	"github.com/palemoky/name-chemi/internal/survey"
)

func emoji(pair content.EmojiPair) string {
	return pair[0] + " " + pair[1]
}

func levelLabel(info chemi.LevelInfo) string {
	return fmt.Sprintf("%d %s", info.Level, info.Name)
}

// renderResult prints a reading followed by its attribute breakdown
func renderResult(w io.Writer, r *chemi.Result) error {
	fmt.Fprintf(w, "%s %s %s  (%s)\n\n", r.OriginalNames[0], emoji(r.EmojiPair), r.OriginalNames[1], r.Date)

	summary := tablewriter.NewWriter(w)
	summary.Header("Field", "Value")
	rows := [][]string{
		{"Score", strconv.Itoa(r.Score)},
		{"Level", levelLabel(r.Level)},
		{"Description", r.Level.Description},
		{"One-liner", r.OneLiner},
		{"Date idea", r.DateScenario},
	}
	for _, row := range rows {
		if err := summary.Append(row); err != nil {
			return err
		}
	}
	if err := summary.Render(); err != nil {
		return err
	}

	strongest := chemi.StrongestAttribute(r.Attributes)
	weakest := chemi.WeakestAttribute(r.Attributes)

	attrs := tablewriter.NewWriter(w)
	attrs.Header("Attribute", "Score", "Level", "")
	for _, attr := range chemi.Attributes {
		mark := ""
		switch attr {
		case strongest.Attribute:
			mark = "strongest"
		case weakest.Attribute:
			mark = "weakest"
		}
		if err := attrs.Append([]string{
			attr.Label(),
			strconv.Itoa(r.Attributes[attr]),
			levelLabel(r.AttributeLevels[attr]),
			mark,
		}); err != nil {
			return err
		}
	}
	return attrs.Render()
}

// renderWeekly prints one row per day of the forecast
func renderWeekly(w io.Writer, f *chemi.Forecast) error {
	fmt.Fprintf(w, "%s + %s, week of %s\n\n", f.Names[0], f.Names[1], f.WeekStart)

	table := tablewriter.NewWriter(w)
	table.Header("Day", "Date", "", "Message")
	for _, day := range f.Forecasts {
		if err := table.Append([]string{day.Label, day.Day, emoji(day.EmojiPair), day.Message}); err != nil {
			return err
		}
	}
	return table.Render()
}

// renderLevels prints the level catalog, strongest first
func renderLevels(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Level", "Name", "Color", "Description")
	for _, info := range chemi.Levels() {
		if err := table.Append([]string{
			strconv.Itoa(int(info.Level)),
			info.Name,
			info.Color,
			info.Description,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// renderSurvey prints the level distribution and attribute means of a survey
func renderSurvey(w io.Writer, r *survey.Report) error {
	fmt.Fprintf(w, "%d names, %d pairs on %s (score %d..%d, mean %.1f)\n\n",
		r.Names, r.Pairs, r.Date, r.ScoreMin, r.ScoreMax, r.ScoreMean)

	levels := tablewriter.NewWriter(w)
	levels.Header("Level", "Pairs", "Share", "")
	for _, info := range chemi.Levels() {
		count := r.Levels[info.Level]
		share := 0.0
		if r.Pairs > 0 {
			share = float64(count) / float64(r.Pairs)
		}
		if err := levels.Append([]string{
			levelLabel(info),
			strconv.Itoa(count),
			fmt.Sprintf("%.1f%%", share*100),
			strings.Repeat("#", int(share*40+0.5)),
		}); err != nil {
			return err
		}
	}
	if err := levels.Render(); err != nil {
		return err
	}

	attrs := tablewriter.NewWriter(w)
	attrs.Header("Attribute", "Mean")
	for _, attr := range chemi.Attributes {
		if err := attrs.Append([]string{attr.Label(), fmt.Sprintf("%.1f", r.AttributeMeans[attr])}); err != nil {
			return err
		}
	}
	if err := attrs.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d distinct one-liners, %d distinct date ideas\n", r.OneLiners, r.Scenarios)
	return nil
}
