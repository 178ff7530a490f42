package github

import (
	"time"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

type userResponse struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio"`
	Twitter     string    `json:"twitter_username"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u userResponse) ToProfile() app.Profile {
	return app.Profile{
		ID:          u.ID,
		Login:       u.Login,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		HTMLURL:     u.HTMLURL,
		Company:     u.Company,
		Blog:        u.Blog,
		Location:    u.Location,
		Email:       u.Email,
		Bio:         u.Bio,
		Twitter:     u.Twitter,
		PublicRepos: u.PublicRepos,
		PublicGists: u.PublicGists,
		Followers:   u.Followers,
		Following:   u.Following,
		CreatedAt:   u.CreatedAt,
	}
}

type repoResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	HTMLURL       string     `json:"html_url"`
	Description   string     `json:"description"`
	Fork          bool       `json:"fork"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PushedAt      *time.Time `json:"pushed_at"`
	Homepage      string     `json:"homepage"`
	Size          int        `json:"size"`
	Stars         int        `json:"stargazers_count"`
	Watchers      int        `json:"watchers_count"`
	Language      string     `json:"language"`
	Forks         int        `json:"forks_count"`
	OpenIssues    int        `json:"open_issues_count"`
	DefaultBranch string     `json:"default_branch"`
	Topics        []string   `json:"topics"`
}

func (r repoResponse) ToRepository() app.Repository {
	// Repos without any push report null; fall back to the update time.
	pushedAt := r.UpdatedAt
	if r.PushedAt != nil {
		pushedAt = *r.PushedAt
	}

	return app.Repository{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		HTMLURL:       r.HTMLURL,
		Description:   r.Description,
		Fork:          r.Fork,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		PushedAt:      pushedAt,
		Homepage:      r.Homepage,
		Size:          r.Size,
		Stars:         r.Stars,
		Watchers:      r.Watchers,
		Language:      r.Language,
		Forks:         r.Forks,
		OpenIssues:    r.OpenIssues,
		DefaultBranch: r.DefaultBranch,
		Topics:        r.Topics,
	}
}

type eventResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Repo    struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload struct {
		Commits []struct {
			SHA string `json:"sha"`
		} `json:"commits"`
	} `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

func (e eventResponse) ToEvent() app.Event {
	return app.Event{
		ID:        e.ID,
		Type:      e.Type,
		RepoName:  e.Repo.Name,
		CreatedAt: e.CreatedAt,
		Commits:   len(e.Payload.Commits),
	}
}
