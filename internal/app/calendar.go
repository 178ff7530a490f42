package app

import "time"

// LevelForCount buckets a day's contribution count into an intensity
// level using the fixed thresholds 0, 1-3, 4-6, 7-9 and 10+.
func LevelForCount(count int) ContributionLevel {
	switch {
	case count <= 0:
		return LevelNone
	case count <= 3:
		return LevelFirstQuartile
	case count <= 6:
		return LevelSecondQuartile
	case count <= 9:
		return LevelThirdQuartile
	default:
		return LevelFourthQuartile
	}
}

// BucketWeeks groups chronologically ordered days into weeks. A new
// week starts whenever a day falls on Sunday and the current week
// already has days, so boundary weeks may be shorter than 7 days.
func BucketWeeks(days []ContributionDay) []ContributionWeek {
	var weeks []ContributionWeek
	var current []ContributionDay

	for _, day := range days {
		if day.Date.Weekday() == time.Sunday && len(current) > 0 {
			weeks = append(weeks, ContributionWeek{Days: current})
			current = nil
		}
		current = append(current, day)
	}
	if len(current) > 0 {
		weeks = append(weeks, ContributionWeek{Days: current})
	}

	return weeks
}

// FlattenCalendar returns all days of the calendar in week order.
func FlattenCalendar(c ContributionCalendar) []ContributionDay {
	var days []ContributionDay
	for _, week := range c.Weeks {
		days = append(days, week.Days...)
	}

	return days
}

// EmptyCalendar builds an all-zero calendar spanning Jan 1 - Dec 31 of
// the given year, so consumers never have to handle an absent calendar.
func EmptyCalendar(year int) ContributionCalendar {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var days []ContributionDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, ContributionDay{
			Date:  d,
			Count: 0,
			Level: LevelNone,
		})
	}

	return ContributionCalendar{
		Total: 0,
		Weeks: BucketWeeks(days),
	}
}
