package app

import "time"

// Profile holds a user's identity and public counters.
// Immutable once fetched.
type Profile struct {
	ID          int64
	Login       string
	Name        string
	AvatarURL   string
	HTMLURL     string
	Company     string
	Blog        string
	Location    string
	Email       string
	Bio         string
	Twitter     string
	PublicRepos int
	PublicGists int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// Repository entity. Language is empty when github reports none.
type Repository struct {
	ID            int64
	Name          string
	FullName      string
	HTMLURL       string
	Description   string
	Fork          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PushedAt      time.Time
	Homepage      string
	Size          int
	Stars         int
	Watchers      int
	Language      string
	Forks         int
	OpenIssues    int
	DefaultBranch string
	Topics        []string
}

// Event types relevant for insight tallies. Other types pass through
// untallied but still count towards the hour histogram.
const (
	EventPush        = "PushEvent"
	EventPullRequest = "PullRequestEvent"
	EventIssues      = "IssuesEvent"
	EventReview      = "PullRequestReviewEvent"
)

// Event is a single entry from a user's public activity feed.
// The feed only ever exposes roughly the 300 most recent events.
type Event struct {
	ID        string
	Type      string
	RepoName  string
	CreatedAt time.Time
	// Commits is the number of commits carried by a push event, 0 for
	// other event types.
	Commits int
}

// ContributionLevel is the bucketed intensity of a contribution day.
type ContributionLevel string

// Contribution levels, named as the primary source reports them.
const (
	LevelNone           ContributionLevel = "NONE"
	LevelFirstQuartile  ContributionLevel = "FIRST_QUARTILE"
	LevelSecondQuartile ContributionLevel = "SECOND_QUARTILE"
	LevelThirdQuartile  ContributionLevel = "THIRD_QUARTILE"
	LevelFourthQuartile ContributionLevel = "FOURTH_QUARTILE"
)

// ContributionDay is one calendar day with its contribution count.
type ContributionDay struct {
	Date  time.Time
	Count int
	Level ContributionLevel
}

// ContributionWeek holds up to 7 consecutive days. Boundary weeks of a
// year may be shorter.
type ContributionWeek struct {
	Days []ContributionDay
}

// ContributionCalendar is a year of contribution days grouped into
// chronologically ordered weeks.
type ContributionCalendar struct {
	Total int
	Weeks []ContributionWeek
}

// RepositoryContributions is one entry of the primary source's
// per-repository commit breakdown.
type RepositoryContributions struct {
	Name        string
	FullName    string
	URL         string
	Stars       int
	Language    string
	Description string
	Commits     int
}

// ContributionSummary is the primary source's exact yearly summary.
// Only available for authenticated requests.
type ContributionSummary struct {
	Commits            int
	PullRequests       int
	Issues             int
	Reviews            int
	ReposContributedTo int
	Calendar           ContributionCalendar
	ByRepository       []RepositoryContributions
}

// Bundle is the joined raw data for one (user, year) acquisition.
// Summary and FallbackCalendar are nil when their source was
// unavailable.
type Bundle struct {
	Profile          Profile
	Repositories     []Repository
	Events           []Event
	Summary          *ContributionSummary
	FallbackCalendar *ContributionCalendar
}

// RateLimit is the last observed api quota state.
type RateLimit struct {
	Remaining int
	Limit     int
	Reset     time.Time
}

// LanguageStat is one language's share of the user's repositories.
type LanguageStat struct {
	Name       string
	Count      int
	Percentage int
	Color      string
}

// RepoStat is one of the user's top repositories.
type RepoStat struct {
	Name        string
	FullName    string
	URL         string
	Stars       int
	Commits     int
	Language    string
	Description string
}

// MonthlyActivity is the contribution count of one month.
type MonthlyActivity struct {
	Month         string
	Year          int
	Contributions int
}

// PersonalityTrait is one scored, labeled facet of the personality
// profile. Value is in range 0-100.
type PersonalityTrait struct {
	Name  string
	Value int
	Label string
}

// Personality is the rule-based developer profile.
type Personality struct {
	Title       string
	Emoji       string
	Description string
	Traits      []PersonalityTrait
}

// Insights is the computed yearly statistics object. Created once per
// request and never mutated afterwards.
type Insights struct {
	TotalContributions int
	TotalCommits       int
	TotalPullRequests  int
	TotalIssues        int
	TotalReviews       int

	ReposContributedTo int
	NewRepositories    int
	TopRepositories    []RepoStat

	TopLanguages   []LanguageStat
	TotalLanguages int

	MostProductiveDay  string
	MostProductiveHour int
	PeakHourRange      string
	ActivityByDay      map[string]int
	ActivityByHour     [24]int
	MonthlyActivity    []MonthlyActivity

	LongestStreak   int
	CurrentStreak   int
	TotalActiveDays int

	SoloVsTeamScore int
	BugSlayerScore  int

	Calendar ContributionCalendar

	Personality Personality
}

// Wrapped is the full result handed to the presentation layer.
type Wrapped struct {
	Profile  Profile
	Year     int
	Insights Insights
}
