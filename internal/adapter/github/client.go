package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches profile, repository, event and contribution data
// from the github apis. This struct is an adapter for app.GithubClient.
type Client struct {
	doer           HTTPDoer
	address        string
	graphQLAddress string
	authToken      string
	limits         *RateLimitTracker

	reposPerPage  int
	maxRepos      int
	eventsPerPage int
	maxEvents     int
	// The events api never serves more than 3 pages of history.
	maxEventPages int

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional; without it the contribution summary source is
// skipped entirely.
func NewClient(doer HTTPDoer, address string, graphQLAddress string, authToken string, limits *RateLimitTracker) *Client {
	c := Client{
		doer:           doer,
		address:        address,
		graphQLAddress: graphQLAddress,
		authToken:      authToken,
		limits:         limits,

		reposPerPage:  100,
		maxRepos:      100,
		eventsPerPage: 100,
		maxEvents:     300,
		maxEventPages: 3,

		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// Authenticated tells whether the client carries a credential.
func (c *Client) Authenticated() bool {
	return c.authToken != ""
}

// Profile returns the user's profile. Returns app.NotFoundError when
// the user doesn't exist.
func (c *Client) Profile(ctx context.Context, username string) (app.Profile, error) {
	if username == "" {
		return app.Profile{}, app.InvalidRequestError("username cannot be empty")
	}

	httpReq, err := http.NewRequest(http.MethodGet, c.address+"/users/"+url.PathEscape(username), nil)
	if err != nil {
		return app.Profile{}, fmt.Errorf("creating http request: %w", err)
	}

	body, _, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return app.Profile{}, err
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToProfile(), nil
}

// Repositories returns the user's own repositories, newest updated
// first. Pagination errors propagate: a silently truncated list would
// skew the language and top repository stats.
func (c *Client) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	repos, err := fetchPaged(ctx, pagedConfig{
		perPage:  c.reposPerPage,
		maxItems: c.maxRepos,
	}, func(ctx context.Context, page int) ([]repoResponse, error) {
		v := make(url.Values)
		v.Set("per_page", strconv.Itoa(c.reposPerPage))
		v.Set("page", strconv.Itoa(page))
		v.Set("sort", "updated")
		v.Set("type", "owner")

		var resp []repoResponse
		if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/repos", v, &resp); err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]app.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, r.ToRepository())
	}

	return result, nil
}

// Events returns up to the ~300 most recent entries of the user's
// public activity feed. The feed is best-effort by design: a failed
// page just ends the collection.
func (c *Client) Events(ctx context.Context, username string) ([]app.Event, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	events, err := fetchPaged(ctx, pagedConfig{
		perPage:  c.eventsPerPage,
		maxItems: c.maxEvents,
		maxPages: c.maxEventPages,
		softFail: true,
	}, func(ctx context.Context, page int) ([]eventResponse, error) {
		v := make(url.Values)
		v.Set("per_page", strconv.Itoa(c.eventsPerPage))
		v.Set("page", strconv.Itoa(page))

		var resp []eventResponse
		if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/events", v, &resp); err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]app.Event, 0, len(events))
	for _, e := range events {
		result = append(result, e.ToEvent())
	}

	return result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	u.RawQuery = query.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	body, _, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	c.limits.Update(resp.Header)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, app.NotFoundError("resource not found")
	case resp.StatusCode == http.StatusForbidden:
		return nil, resp.StatusCode, app.RateLimitedError(c.rateLimitedMessage())
	case resp.StatusCode/100 > 3:
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}

	return b, resp.StatusCode, nil
}

func (c *Client) rateLimitedMessage() string {
	if state, ok := c.limits.Current(); ok && !state.Reset.IsZero() {
		return fmt.Sprintf("api rate limit exceeded, resets at %s", state.Reset.UTC().Format(time.RFC1123))
	}

	return "api rate limit exceeded, resets soon"
}
