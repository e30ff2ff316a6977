package model

import (
	"sort"
	"time"
)

// DateFormat is the calendar date layout used throughout rota documents.
const DateFormat = "2006-01-02"

// ParseDate parses a rota calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// AddDays shifts a calendar date by the given number of days. An unparseable
// date is returned unchanged.
func AddDays(date string, days int) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateFormat)
}

// Overlap reports whether two half-open time windows intersect.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Runs splits a set of calendar dates into maximal runs of consecutive days.
// Duplicate dates collapse; each run comes back sorted, and runs are ordered
// by their first date.
func Runs(dates []string) [][]string {
	if len(dates) == 0 {
		return nil
	}
	uniq := make(map[string]bool, len(dates))
	for _, d := range dates {
		uniq[d] = true
	}
	sorted := make([]string, 0, len(uniq))
	for d := range uniq {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	var runs [][]string
	current := []string{sorted[0]}
	for _, d := range sorted[1:] {
		if AddDays(current[len(current)-1], 1) == d {
			current = append(current, d)
			continue
		}
		runs = append(runs, current)
		current = []string{d}
	}
	runs = append(runs, current)
	return runs
}

// RunEndingBefore returns the length of the consecutive run of worked dates
// ending on the day before date. Used to judge fatigue going into a shift.
func RunEndingBefore(dates []string, date string) int {
	worked := make(map[string]bool, len(dates))
	for _, d := range dates {
		worked[d] = true
	}
	run := 0
	cursor := AddDays(date, -1)
	for worked[cursor] {
		run++
		cursor = AddDays(cursor, -1)
	}
	return run
}
