package app

import (
	"fmt"
	"math"
	"sort"
	"time"
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeInsights reduces the raw bundle to the yearly statistics
// object. It is pure: same bundle, year and evaluation instant always
// produce the same result.
//
// When the raw sources disagree, precedence is: contribution summary,
// then contribution calendar, then event tallies.
func ComputeInsights(b Bundle, year int, now time.Time) Insights {
	events := eventsForYear(b.Events, year)
	cal := activeCalendar(b)

	counters := basicCounters(events, b.Summary, cal)
	languages, totalLanguages := languageStats(b.Repositories)
	activity := activityPatterns(events, cal, year)
	streak := calculateStreaks(cal, now)
	solo := soloVsTeamScore(b.Repositories)
	bugSlayer := bugSlayerScore(events)

	calendar := EmptyCalendar(year)
	if cal != nil {
		calendar = *cal
	}

	return Insights{
		TotalContributions: counters.total,
		TotalCommits:       counters.commits,
		TotalPullRequests:  counters.pullRequests,
		TotalIssues:        counters.issues,
		TotalReviews:       counters.reviews,

		ReposContributedTo: counters.reposContributedTo,
		NewRepositories:    reposCreatedIn(b.Repositories, year),
		TopRepositories:    topRepositories(b.Repositories, b.Summary),

		TopLanguages:   languages,
		TotalLanguages: totalLanguages,

		MostProductiveDay:  activity.mostProductiveDay,
		MostProductiveHour: activity.mostProductiveHour,
		PeakHourRange:      activity.peakHourRange,
		ActivityByDay:      activity.byDay,
		ActivityByHour:     activity.byHour,
		MonthlyActivity:    activity.monthly,

		LongestStreak:   streak.longest,
		CurrentStreak:   streak.current,
		TotalActiveDays: streak.activeDays,

		SoloVsTeamScore: solo,
		BugSlayerScore:  bugSlayer,

		Calendar: calendar,

		Personality: personality(b.Repositories, activity, solo, bugSlayer),
	}
}

// activeCalendar picks the calendar all derived stats are based on:
// the primary source's when the summary is present, else the fallback
// source's. Nil when neither source delivered.
func activeCalendar(b Bundle) *ContributionCalendar {
	if b.Summary != nil {
		return &b.Summary.Calendar
	}

	return b.FallbackCalendar
}

func eventsForYear(events []Event, year int) []Event {
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if e.CreatedAt.UTC().Year() == year {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

func reposCreatedIn(repos []Repository, year int) int {
	var n int
	for _, r := range repos {
		if r.CreatedAt.UTC().Year() == year {
			n++
		}
	}

	return n
}

type counters struct {
	total              int
	commits            int
	pullRequests       int
	issues             int
	reviews            int
	reposContributedTo int
}

func basicCounters(events []Event, summary *ContributionSummary, cal *ContributionCalendar) counters {
	if summary != nil {
		return counters{
			total:              summary.Calendar.Total,
			commits:            summary.Commits,
			pullRequests:       summary.PullRequests,
			issues:             summary.Issues,
			reviews:            summary.Reviews,
			reposContributedTo: summary.ReposContributedTo,
		}
	}

	var commits, pullRequests, issues, reviews int
	repoSet := make(map[string]struct{})
	for _, e := range events {
		switch e.Type {
		case EventPush:
			// An empty push payload still represents at least one commit.
			n := e.Commits
			if n == 0 {
				n = 1
			}
			commits += n
		case EventPullRequest:
			pullRequests++
		case EventIssues:
			issues++
		case EventReview:
			reviews++
		default:
			continue
		}
		repoSet[e.RepoName] = struct{}{}
	}

	// Calendar day sums are more complete than the capped event feed.
	if cal != nil {
		var calendarCommits int
		for _, day := range FlattenCalendar(*cal) {
			calendarCommits += day.Count
		}
		if calendarCommits > 0 {
			commits = calendarCommits
		}
	}

	total := commits + pullRequests + issues + reviews
	if cal != nil {
		total = cal.Total
	}

	return counters{
		total:              total,
		commits:            commits,
		pullRequests:       pullRequests,
		issues:             issues,
		reviews:            reviews,
		reposContributedTo: len(repoSet),
	}
}

func languageStats(repos []Repository) ([]LanguageStat, int) {
	countByLanguage := make(map[string]int)
	var total int
	for _, r := range repos {
		if r.Fork || r.Language == "" {
			continue
		}
		countByLanguage[r.Language]++
		total++
	}
	if total == 0 {
		return nil, 0
	}

	languages := make([]LanguageStat, 0, len(countByLanguage))
	for name, count := range countByLanguage {
		languages = append(languages, LanguageStat{
			Name:       name,
			Count:      count,
			Percentage: roundPercent(count, total),
			Color:      languageColor(name),
		})
	}
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Count != languages[j].Count {
			return languages[i].Count > languages[j].Count
		}
		return languages[i].Name < languages[j].Name
	})

	totalLanguages := len(languages)
	if len(languages) > 8 {
		languages = languages[:8]
	}

	return languages, totalLanguages
}

func topRepositories(repos []Repository, summary *ContributionSummary) []RepoStat {
	if summary != nil && len(summary.ByRepository) > 0 {
		stats := make([]RepoStat, 0, len(summary.ByRepository))
		for _, rc := range summary.ByRepository {
			stats = append(stats, RepoStat{
				Name:        rc.Name,
				FullName:    rc.FullName,
				URL:         rc.URL,
				Stars:       rc.Stars,
				Commits:     rc.Commits,
				Language:    rc.Language,
				Description: rc.Description,
			})
		}
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].Commits > stats[j].Commits
		})
		if len(stats) > 6 {
			stats = stats[:6]
		}
		return stats
	}

	ownRepos := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			ownRepos = append(ownRepos, r)
		}
	}
	// Stars dominate the ranking; push recency only breaks near-ties.
	score := func(r Repository) float64 {
		return float64(r.Stars) + float64(r.PushedAt.UnixMilli())/1e12
	}
	sort.SliceStable(ownRepos, func(i, j int) bool {
		return score(ownRepos[i]) > score(ownRepos[j])
	})
	if len(ownRepos) > 6 {
		ownRepos = ownRepos[:6]
	}

	stats := make([]RepoStat, 0, len(ownRepos))
	for _, r := range ownRepos {
		stats = append(stats, RepoStat{
			Name:        r.Name,
			FullName:    r.FullName,
			URL:         r.HTMLURL,
			Stars:       r.Stars,
			Commits:     0,
			Language:    r.Language,
			Description: r.Description,
		})
	}

	return stats
}

type activity struct {
	mostProductiveDay  string
	mostProductiveHour int
	peakHourRange      string
	byDay              map[string]int
	byHour             [24]int
	monthly            []MonthlyActivity
}

func activityPatterns(events []Event, cal *ContributionCalendar, year int) activity {
	var byHour [24]int
	var byDayIdx [7]int
	var byMonth [12]int

	// Only events carry a time of day.
	for _, e := range events {
		byHour[e.CreatedAt.UTC().Hour()]++
	}

	if cal != nil {
		for _, day := range FlattenCalendar(*cal) {
			if day.Date.UTC().Year() != year || day.Count == 0 {
				continue
			}
			byDayIdx[int(day.Date.UTC().Weekday())] += day.Count
			byMonth[int(day.Date.UTC().Month())-1] += day.Count
		}
	} else {
		for _, e := range events {
			created := e.CreatedAt.UTC()
			byDayIdx[int(created.Weekday())]++
			byMonth[int(created.Month())-1]++
		}
	}

	bestDay := argmax(byDayIdx[:])
	bestHour := argmax(byHour[:])

	byDay := make(map[string]int, 7)
	for i, count := range byDayIdx {
		byDay[dayNames[i]] = count
	}

	monthly := make([]MonthlyActivity, 0, 12)
	for i, count := range byMonth {
		monthly = append(monthly, MonthlyActivity{
			Month:         monthNames[i],
			Year:          year,
			Contributions: count,
		})
	}

	return activity{
		mostProductiveDay:  dayNames[bestDay],
		mostProductiveHour: bestHour,
		peakHourRange:      peakHourRange(bestHour),
		byDay:              byDay,
		byHour:             byHour,
		monthly:            monthly,
	}
}

// argmax returns the index of the largest value, first index on ties.
func argmax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}

	return best
}

func peakHourRange(hour int) string {
	start := hour - 1
	if start < 0 {
		start = 0
	}
	end := hour + 1
	if end > 23 {
		end = 23
	}

	return fmt.Sprintf("%s - %s", formatHour(start), formatHour(end))
}

func formatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h == 12:
		return "12 PM"
	case h > 12:
		return fmt.Sprintf("%d PM", h-12)
	default:
		return fmt.Sprintf("%d AM", h)
	}
}

type streaks struct {
	longest    int
	current    int
	activeDays int
}

// calculateStreaks scans the calendar days once, in chronological
// order. A run only counts as current if it reaches within one day of
// the evaluation instant.
func calculateStreaks(cal *ContributionCalendar, now time.Time) streaks {
	if cal == nil {
		return streaks{}
	}

	days := FlattenCalendar(*cal)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	today := truncateToDay(now)

	var result streaks
	var run int
	for _, day := range days {
		if day.Count > 0 {
			result.activeDays++
			run++

			diff := int(today.Sub(truncateToDay(day.Date)).Hours() / 24)
			if diff <= 1 {
				result.current = run
			}
			continue
		}

		if run > result.longest {
			result.longest = run
		}
		run = 0
	}
	if run > result.longest {
		result.longest = run
	}

	return result
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func soloVsTeamScore(repos []Repository) int {
	var own, forked int
	for _, r := range repos {
		if r.Fork {
			forked++
		} else {
			own++
		}
	}
	// The ratio is meaningless with no repositories at all.
	if own+forked == 0 {
		return 50
	}

	return roundPercent(own, own+forked)
}

func bugSlayerScore(events []Event) int {
	var issues, pullRequests int
	for _, e := range events {
		switch e.Type {
		case EventIssues:
			issues++
		case EventPullRequest:
			pullRequests++
		}
	}
	// Undefined ratio is treated as neutral.
	if issues+pullRequests == 0 {
		return 50
	}

	return roundPercent(issues, issues+pullRequests)
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
