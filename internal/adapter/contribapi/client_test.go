package contribapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitwrapped/gitwrapped/internal/app"
	"github.com/gitwrapped/gitwrapped/internal/mock"
)

const testAddress = "http://contrib.test/v4"

func TestClientCalendar(t *testing.T) {
	t.Parallel()

	// 2024-01-01 is a Monday, 2024-01-07 the first Sunday.
	body := `{
		"total": {"2024": 50},
		"contributions": [
			{"date": "2024-01-01", "count": 3},
			{"date": "2024-01-02", "count": 0},
			{"date": "2024-01-03", "count": 5},
			{"date": "2024-01-04", "count": 0},
			{"date": "2024-01-05", "count": 0},
			{"date": "2024-01-06", "count": 0},
			{"date": "2024-01-07", "count": 12}
		]
	}`
	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(body)},
	}
	c := NewClient(doer, testAddress)

	cal, err := c.Calendar(context.Background(), "ada", 2024)
	require.NoError(t, err)
	require.NotNil(t, cal)

	// Reported total wins over the day sum of 20.
	assert.Equal(t, 50, cal.Total)

	require.Len(t, cal.Weeks, 2)
	assert.Len(t, cal.Weeks[0].Days, 6)
	assert.Len(t, cal.Weeks[1].Days, 1)
	assert.Equal(t, time.Sunday, cal.Weeks[1].Days[0].Date.Weekday())

	assert.Equal(t, app.ContributionDay{
		Date:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Count: 3,
		Level: app.LevelFirstQuartile,
	}, cal.Weeks[0].Days[0])
	assert.Equal(t, app.LevelFourthQuartile, cal.Weeks[1].Days[0].Level)

	require.Len(t, doer.Responses, 1)
	req := doer.Responses[0].Request
	assert.Equal(t, "/v4/ada", req.URL.Path)
	assert.Equal(t, "2024", req.URL.Query().Get("y"))
}

func TestClientCalendarSummedTotal(t *testing.T) {
	t.Parallel()

	body := `{
		"total": {},
		"contributions": [
			{"date": "2024-02-01", "count": 4},
			{"date": "2024-02-02", "count": 6}
		]
	}`
	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(body)},
	}
	c := NewClient(doer, testAddress)

	cal, err := c.Calendar(context.Background(), "ada", 2024)
	require.NoError(t, err)

	// Without a reported total the day sum is used.
	assert.Equal(t, 10, cal.Total)
}

func TestClientCalendarFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: ""},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "malformed body", status: http.StatusOK, body: `{"contributions": "nope"}`},
		{name: "malformed date", status: http.StatusOK, body: `{"contributions": [{"date": "01.02.2024", "count": 1}]}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doer := &mock.HTTPDoer{
				Statuses: []int{tt.status},
				Bodies:   [][]byte{[]byte(tt.body)},
			}
			c := NewClient(doer, testAddress)

			_, err := c.Calendar(context.Background(), "ada", 2024)
			assert.Error(t, err)
		})
	}
}

func TestClientCalendarEmptyUsername(t *testing.T) {
	t.Parallel()

	c := NewClient(&mock.HTTPDoer{}, testAddress)

	_, err := c.Calendar(context.Background(), "", 2024)
	assert.True(t, app.IsInvalidRequestError(err))
}
