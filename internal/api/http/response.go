package http

import (
	"time"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

type profileResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatarUrl"`
	HTMLURL     string    `json:"htmlUrl"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	PublicRepos int       `json:"publicRepos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
}

type languageStat struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type repoStat struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Commits     int    `json:"commits"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
}

type monthlyActivity struct {
	Month         string `json:"month"`
	Year          int    `json:"year"`
	Contributions int    `json:"contributions"`
}

type personalityTrait struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

type personality struct {
	Title       string             `json:"title"`
	Emoji       string             `json:"emoji"`
	Description string             `json:"description"`
	Traits      []personalityTrait `json:"traits"`
}

type contributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

type contributionWeek struct {
	Days []contributionDay `json:"days"`
}

type contributionCalendar struct {
	Total int                `json:"total"`
	Weeks []contributionWeek `json:"weeks"`
}

type insightsResponse struct {
	TotalContributions int `json:"totalContributions"`
	TotalCommits       int `json:"totalCommits"`
	TotalPullRequests  int `json:"totalPullRequests"`
	TotalIssues        int `json:"totalIssues"`
	TotalReviews       int `json:"totalReviews"`

	ReposContributedTo int        `json:"reposContributedTo"`
	NewRepositories    int        `json:"newRepositories"`
	TopRepositories    []repoStat `json:"topRepositories"`

	TopLanguages   []languageStat `json:"topLanguages"`
	TotalLanguages int            `json:"totalLanguages"`

	MostProductiveDay  string            `json:"mostProductiveDay"`
	MostProductiveHour int               `json:"mostProductiveHour"`
	PeakHourRange      string            `json:"peakHourRange"`
	ActivityByDay      map[string]int    `json:"activityByDay"`
	ActivityByHour     []int             `json:"activityByHour"`
	MonthlyActivity    []monthlyActivity `json:"monthlyActivity"`

	LongestStreak   int `json:"longestStreak"`
	CurrentStreak   int `json:"currentStreak"`
	TotalActiveDays int `json:"totalActiveDays"`

	SoloVsTeamScore int `json:"soloVsTeamScore"`
	BugSlayerScore  int `json:"bugSlayerScore"`

	Calendar contributionCalendar `json:"calendar"`

	Personality personality `json:"personality"`
}

type wrappedResponse struct {
	Profile  profileResponse  `json:"profile"`
	Year     int              `json:"year"`
	Insights insightsResponse `json:"insights"`
}

func newWrappedResponse(w app.Wrapped) wrappedResponse {
	return wrappedResponse{
		Profile: profileResponse{
			Login:       w.Profile.Login,
			Name:        w.Profile.Name,
			AvatarURL:   w.Profile.AvatarURL,
			HTMLURL:     w.Profile.HTMLURL,
			Bio:         w.Profile.Bio,
			Location:    w.Profile.Location,
			PublicRepos: w.Profile.PublicRepos,
			Followers:   w.Profile.Followers,
			Following:   w.Profile.Following,
			CreatedAt:   w.Profile.CreatedAt,
		},
		Year:     w.Year,
		Insights: newInsightsResponse(w.Insights),
	}
}

func newInsightsResponse(in app.Insights) insightsResponse {
	topRepos := make([]repoStat, 0, len(in.TopRepositories))
	for _, r := range in.TopRepositories {
		topRepos = append(topRepos, repoStat{
			Name:        r.Name,
			FullName:    r.FullName,
			URL:         r.URL,
			Stars:       r.Stars,
			Commits:     r.Commits,
			Language:    r.Language,
			Description: r.Description,
		})
	}

	languages := make([]languageStat, 0, len(in.TopLanguages))
	for _, l := range in.TopLanguages {
		languages = append(languages, languageStat{
			Name:       l.Name,
			Count:      l.Count,
			Percentage: l.Percentage,
			Color:      l.Color,
		})
	}

	monthly := make([]monthlyActivity, 0, len(in.MonthlyActivity))
	for _, m := range in.MonthlyActivity {
		monthly = append(monthly, monthlyActivity{
			Month:         m.Month,
			Year:          m.Year,
			Contributions: m.Contributions,
		})
	}

	traits := make([]personalityTrait, 0, len(in.Personality.Traits))
	for _, t := range in.Personality.Traits {
		traits = append(traits, personalityTrait{
			Name:  t.Name,
			Value: t.Value,
			Label: t.Label,
		})
	}

	weeks := make([]contributionWeek, 0, len(in.Calendar.Weeks))
	for _, week := range in.Calendar.Weeks {
		days := make([]contributionDay, 0, len(week.Days))
		for _, day := range week.Days {
			days = append(days, contributionDay{
				Date:  day.Date.Format("2006-01-02"),
				Count: day.Count,
				Level: string(day.Level),
			})
		}
		weeks = append(weeks, contributionWeek{Days: days})
	}

	return insightsResponse{
		TotalContributions: in.TotalContributions,
		TotalCommits:       in.TotalCommits,
		TotalPullRequests:  in.TotalPullRequests,
		TotalIssues:        in.TotalIssues,
		TotalReviews:       in.TotalReviews,
		ReposContributedTo: in.ReposContributedTo,
		NewRepositories:    in.NewRepositories,
		TopRepositories:    topRepos,
		TopLanguages:       languages,
		TotalLanguages:     in.TotalLanguages,
		MostProductiveDay:  in.MostProductiveDay,
		MostProductiveHour: in.MostProductiveHour,
		PeakHourRange:      in.PeakHourRange,
		ActivityByDay:      in.ActivityByDay,
		ActivityByHour:     in.ActivityByHour[:],
		MonthlyActivity:    monthly,
		LongestStreak:      in.LongestStreak,
		CurrentStreak:      in.CurrentStreak,
		TotalActiveDays:    in.TotalActiveDays,
		SoloVsTeamScore:    in.SoloVsTeamScore,
		BugSlayerScore:     in.BugSlayerScore,
		Calendar: contributionCalendar{
			Total: in.Calendar.Total,
			Weeks: weeks,
		},
		Personality: personality{
			Title:       in.Personality.Title,
			Emoji:       in.Personality.Emoji,
			Description: in.Personality.Description,
			Traits:      traits,
		},
	}
}
