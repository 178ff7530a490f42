// Package contribapi fetches a best-effort contribution calendar from
// a public mirror that doesn't require authentication.
package contribapi

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

// Client is an adapter for app.ContributionSource.
type Client struct {
	doer            HTTPDoer
	address         string
	responseMaxSize int
}

var _ app.ContributionSource = &Client{}

// NewClient creates new fallback calendar client.
func NewClient(doer HTTPDoer, address string) *Client {
	return &Client{
		doer:            doer,
		address:         address,
		responseMaxSize: 1024 * 1024 * 5,
	}
}

type calendarResponse struct {
	// Total maps year to the reported contribution total.
	Total         map[string]int `json:"total"`
	Contributions []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	} `json:"contributions"`
}

// Calendar fetches the flat day list for the given year and re-buckets
// it into weeks. The source reports days in chronological order.
func (c *Client) Calendar(ctx context.Context, username string, year int) (*app.ContributionCalendar, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	u, err := url.Parse(c.address + "/" + url.PathEscape(username))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("y", strconv.Itoa(year))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	resp, err := c.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	var cal calendarResponse
	if err := json.Unmarshal(body, &cal); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return cal.toCalendar(year)
}

func (r calendarResponse) toCalendar(year int) (*app.ContributionCalendar, error) {
	days := make([]app.ContributionDay, 0, len(r.Contributions))
	var sum int
	for _, contrib := range r.Contributions {
		date, err := time.Parse("2006-01-02", contrib.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing contribution date %q: %w", contrib.Date, err)
		}
		days = append(days, app.ContributionDay{
			Date:  date,
			Count: contrib.Count,
			Level: app.LevelForCount(contrib.Count),
		})
		sum += contrib.Count
	}

	total := sum
	if reported, ok := r.Total[strconv.Itoa(year)]; ok {
		total = reported
	}

	return &app.ContributionCalendar{
		Total: total,
		Weeks: app.BucketWeeks(days),
	}, nil
}
