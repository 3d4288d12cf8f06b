package model

import (
	"fmt"
	"strconv"
	"time"
)

// DaysIn returns the number of days in the given month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOptions returns the zero-padded day choices for the given year and
// month text. It returns nil if either value is not a number or the month
// is out of range.
func DayOptions(year, month string) []string {
	y, err := strconv.Atoi(year)
	if err != nil {
		return nil
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return nil
	}

	n := DaysIn(y, time.Month(m))
	days := make([]string, n)
	for i := range days {
		days[i] = fmt.Sprintf("%02d", i+1)
	}
	return days
}

// MonthOptions returns "01" through "12".
func MonthOptions() []string {
	months := make([]string, 12)
	for i := range months {
		months[i] = fmt.Sprintf("%02d", i+1)
	}
	return months
}

// ClampDay returns day unchanged unless it is a number larger than the last
// day of the month, in which case the last day is returned.
func ClampDay(year, month, day string) string {
	days := DayOptions(year, month)
	if len(days) == 0 {
		return day
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return day
	}
	if d > len(days) {
		return days[len(days)-1]
	}
	return day
}
