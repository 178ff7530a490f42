package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitwrapped/gitwrapped/internal/app"
	"github.com/gitwrapped/gitwrapped/internal/mock"
)

const testAPIAddress = "http://github.test"

func newTestClient(doer HTTPDoer, authToken string) *Client {
	return NewClient(doer, testAPIAddress, testAPIAddress+"/graphql", authToken, NewRateLimitTracker())
}

func TestClientProfile(t *testing.T) {
	t.Parallel()

	created := time.Date(2011, time.March, 1, 10, 0, 0, 0, time.UTC)
	doer := &mock.HTTPDoer{
		Bodies: [][]byte{marshalJSON(t, userResponse{
			Login:       "ada",
			ID:          7,
			Name:        "Ada",
			PublicRepos: 12,
			Followers:   3,
			CreatedAt:   created,
		})},
	}

	c := newTestClient(doer, "secret-token")

	profile, err := c.Profile(context.Background(), "ada")
	require.NoError(t, err)

	assert.Equal(t, app.Profile{
		Login:       "ada",
		ID:          7,
		Name:        "Ada",
		PublicRepos: 12,
		Followers:   3,
		CreatedAt:   created,
	}, profile)

	require.Len(t, doer.Responses, 1)
	req := doer.Responses[0].Request
	assert.Equal(t, testAPIAddress+"/users/ada", req.URL.String())
	assert.Equal(t, "application/vnd.github.v3+json", req.Header.Get("Accept"))
	assert.Equal(t, "token secret-token", req.Header.Get("Authorization"))
}

func TestClientProfileEmptyUsername(t *testing.T) {
	t.Parallel()

	c := newTestClient(&mock.HTTPDoer{}, "")

	_, err := c.Profile(context.Background(), "")
	assert.True(t, app.IsInvalidRequestError(err))
}

func TestClientProfileNotFound(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
	}
	c := newTestClient(doer, "")

	_, err := c.Profile(context.Background(), "nobody")
	assert.True(t, app.IsNotFoundError(err), "expected not found error, got: %v", err)
}

func TestClientProfileRateLimited(t *testing.T) {
	t.Parallel()

	t.Run("with quota headers", func(t *testing.T) {
		t.Parallel()

		reset := int64(1717243200)
		doer := &mock.HTTPDoer{
			Statuses: []int{http.StatusForbidden},
			Headers: []http.Header{{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Limit":     []string{"60"},
				"X-Ratelimit-Reset":     []string{strconv.FormatInt(reset, 10)},
			}},
		}
		c := newTestClient(doer, "")

		_, err := c.Profile(context.Background(), "ada")
		require.True(t, app.IsRateLimitedError(err), "expected rate limited error, got: %v", err)

		wantReset := time.Unix(reset, 0).UTC().Format(time.RFC1123)
		assert.EqualError(t, err, fmt.Sprintf("api rate limit exceeded, resets at %s", wantReset))
	})

	t.Run("without quota headers", func(t *testing.T) {
		t.Parallel()

		doer := &mock.HTTPDoer{
			Statuses: []int{http.StatusForbidden},
		}
		c := newTestClient(doer, "")

		_, err := c.Profile(context.Background(), "ada")
		require.True(t, app.IsRateLimitedError(err))
		assert.EqualError(t, err, "api rate limit exceeded, resets soon")
	})
}

func TestClientRepositories(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{marshalJSON(t, repoPage(50))},
	}
	c := newTestClient(doer, "")

	repos, err := c.Repositories(context.Background(), "ada")
	require.NoError(t, err)

	// A short page is the last page; no second call.
	assert.Len(t, repos, 50)
	require.Len(t, doer.Responses, 1)

	query := doer.Responses[0].Request.URL.Query()
	assert.Equal(t, "/users/ada/repos", doer.Responses[0].Request.URL.Path)
	assert.Equal(t, "100", query.Get("per_page"))
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "updated", query.Get("sort"))
	assert.Equal(t, "owner", query.Get("type"))
}

func TestClientRepositoriesMapsFields(t *testing.T) {
	t.Parallel()

	pushed := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{marshalJSON(t, []repoResponse{
			{
				Name:     "engine",
				FullName: "ada/engine",
				Language: "Go",
				Stars:    11,
				PushedAt: &pushed,
			},
			{
				// Never pushed, repositories like this report null.
				Name:      "empty",
				UpdatedAt: updated,
			},
		})},
	}
	c := newTestClient(doer, "")

	repos, err := c.Repositories(context.Background(), "ada")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "engine", repos[0].Name)
	assert.Equal(t, "ada/engine", repos[0].FullName)
	assert.Equal(t, "Go", repos[0].Language)
	assert.Equal(t, 11, repos[0].Stars)
	assert.Equal(t, pushed, repos[0].PushedAt)
	assert.Equal(t, updated, repos[1].PushedAt, "missing push time falls back to update time")
}

func TestClientRepositoriesPageErrorPropagates(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusInternalServerError},
		Bodies:   [][]byte{marshalJSON(t, repoPage(100)), nil},
	}
	c := newTestClient(doer, "")

	_, err := c.Repositories(context.Background(), "ada")
	assert.Error(t, err)
}

func TestClientRepositoriesNotFound(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
	}
	c := newTestClient(doer, "")

	_, err := c.Repositories(context.Background(), "nobody")
	assert.True(t, app.IsNotFoundError(err))
}

func TestClientEvents(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{marshalJSON(t, eventPage(10, 3))},
	}
	c := newTestClient(doer, "")

	events, err := c.Events(context.Background(), "ada")
	require.NoError(t, err)
	require.Len(t, events, 10)

	assert.Equal(t, app.EventPush, events[0].Type)
	assert.Equal(t, "ada/engine", events[0].RepoName)
	assert.Equal(t, 3, events[0].Commits)
}

func TestClientEventsPageCap(t *testing.T) {
	t.Parallel()

	page := marshalJSON(t, eventPage(100, 1))
	doer := &mock.HTTPDoer{
		Bodies: [][]byte{page, page, page, page},
	}
	c := newTestClient(doer, "")

	events, err := c.Events(context.Background(), "ada")
	require.NoError(t, err)

	// The feed never goes deeper than 3 pages.
	assert.Len(t, events, 300)
	assert.Len(t, doer.Responses, 3)
}

func TestClientEventsSoftFail(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK, http.StatusInternalServerError},
		Bodies:   [][]byte{marshalJSON(t, eventPage(100, 1)), nil},
	}
	c := newTestClient(doer, "")

	events, err := c.Events(context.Background(), "ada")
	require.NoError(t, err)

	// A broken deeper page keeps whatever was collected so far.
	assert.Len(t, events, 100)
	assert.Len(t, doer.Responses, 2)
}

func TestClientEventsFirstPageNotFound(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusNotFound},
	}
	c := newTestClient(doer, "")

	_, err := c.Events(context.Background(), "nobody")
	assert.True(t, app.IsNotFoundError(err), "expected not found error, got: %v", err)
}

func TestClientAuthenticated(t *testing.T) {
	t.Parallel()

	assert.True(t, newTestClient(&mock.HTTPDoer{}, "secret-token").Authenticated())
	assert.False(t, newTestClient(&mock.HTTPDoer{}, "").Authenticated())
}

func marshalJSON(t *testing.T, v interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return data
}

func repoPage(n int) []repoResponse {
	page := make([]repoResponse, 0, n)
	for i := 0; i < n; i++ {
		page = append(page, repoResponse{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("repo-%d", i),
			Language: "Go",
		})
	}

	return page
}

func eventPage(n, commits int) []eventResponse {
	page := make([]eventResponse, 0, n)
	for i := 0; i < n; i++ {
		e := eventResponse{
			ID:        strconv.Itoa(i + 1),
			Type:      app.EventPush,
			CreatedAt: time.Date(2024, time.April, 2, 14, 0, 0, 0, time.UTC),
		}
		e.Repo.Name = "ada/engine"
		for j := 0; j < commits; j++ {
			e.Payload.Commits = append(e.Payload.Commits, struct {
				SHA string `json:"sha"`
			}{SHA: fmt.Sprintf("sha-%d", j)})
		}
		page = append(page, e)
	}

	return page
}
