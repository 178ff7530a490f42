package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

// contributionsQuery asks the primary source for the exact yearly
// summary and calendar in a single request.
const contributionsQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      totalCommitContributions
      totalPullRequestContributions
      totalIssueContributions
      totalPullRequestReviewContributions
      totalRepositoriesWithContributedCommits
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            contributionLevel
          }
        }
      }
      commitContributionsByRepository(maxRepositories: 20) {
        repository {
          name
          nameWithOwner
          url
          primaryLanguage {
            name
          }
          stargazerCount
          description
        }
        contributions {
          totalCount
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User struct {
			ContributionsCollection *collectionResponse `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type collectionResponse struct {
	TotalCommitContributions            int `json:"totalCommitContributions"`
	TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
	TotalIssueContributions             int `json:"totalIssueContributions"`
	TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
	TotalReposWithContributedCommits    int `json:"totalRepositoriesWithContributedCommits"`

	ContributionCalendar struct {
		TotalContributions int `json:"totalContributions"`
		Weeks              []struct {
			ContributionDays []struct {
				Date  string `json:"date"`
				Count int    `json:"contributionCount"`
				Level string `json:"contributionLevel"`
			} `json:"contributionDays"`
		} `json:"weeks"`
	} `json:"contributionCalendar"`

	CommitContributionsByRepository []struct {
		Repository struct {
			Name            string `json:"name"`
			NameWithOwner   string `json:"nameWithOwner"`
			URL             string `json:"url"`
			PrimaryLanguage *struct {
				Name string `json:"name"`
			} `json:"primaryLanguage"`
			StargazerCount int    `json:"stargazerCount"`
			Description    string `json:"description"`
		} `json:"repository"`
		Contributions struct {
			TotalCount int `json:"totalCount"`
		} `json:"contributions"`
	} `json:"commitContributionsByRepository"`
}

// ContributionSummary queries the primary contribution source for the
// full year range. Without a credential the source is unusable, so the
// call is skipped and reports the summary as absent.
func (c *Client) ContributionSummary(ctx context.Context, username string, year int) (*app.ContributionSummary, error) {
	if c.authToken == "" {
		return nil, nil
	}
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	reqBody, err := json.Marshal(graphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]interface{}{
			"username": username,
			"from":     fmt.Sprintf("%d-01-01T00:00:00Z", year),
			"to":       fmt.Sprintf("%d-12-31T23:59:59Z", year),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.graphQLAddress, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	httpReq.Header.Set("Content-Type", "application/json")

	body, _, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp contributionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", resp.Errors[0].Message)
	}
	if resp.Data.User.ContributionsCollection == nil {
		return nil, errors.New("response has no contributions collection")
	}

	return resp.Data.User.ContributionsCollection.toSummary()
}

func (c *collectionResponse) toSummary() (*app.ContributionSummary, error) {
	weeks := make([]app.ContributionWeek, 0, len(c.ContributionCalendar.Weeks))
	for _, week := range c.ContributionCalendar.Weeks {
		days := make([]app.ContributionDay, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				return nil, fmt.Errorf("parsing contribution day date %q: %w", day.Date, err)
			}
			days = append(days, app.ContributionDay{
				Date:  date,
				Count: day.Count,
				Level: app.ContributionLevel(day.Level),
			})
		}
		weeks = append(weeks, app.ContributionWeek{Days: days})
	}

	byRepository := make([]app.RepositoryContributions, 0, len(c.CommitContributionsByRepository))
	for _, rc := range c.CommitContributionsByRepository {
		var language string
		if rc.Repository.PrimaryLanguage != nil {
			language = rc.Repository.PrimaryLanguage.Name
		}
		byRepository = append(byRepository, app.RepositoryContributions{
			Name:        rc.Repository.Name,
			FullName:    rc.Repository.NameWithOwner,
			URL:         rc.Repository.URL,
			Stars:       rc.Repository.StargazerCount,
			Language:    language,
			Description: rc.Repository.Description,
			Commits:     rc.Contributions.TotalCount,
		})
	}

	return &app.ContributionSummary{
		Commits:            c.TotalCommitContributions,
		PullRequests:       c.TotalPullRequestContributions,
		Issues:             c.TotalIssueContributions,
		Reviews:            c.TotalPullRequestReviewContributions,
		ReposContributedTo: c.TotalReposWithContributedCommits,
		Calendar: app.ContributionCalendar{
			Total: c.ContributionCalendar.TotalContributions,
			Weeks: weeks,
		},
		ByRepository: byRepository,
	}, nil
}
