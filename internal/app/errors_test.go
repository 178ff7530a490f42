package app_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

func TestErrorTypes(t *testing.T) {
	t.Parallel()

	plainErr := errors.New("test error")

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name:  "invalid request",
			err:   app.InvalidRequestError("bad input"),
			check: app.IsInvalidRequestError,
		},
		{
			name:  "not found",
			err:   app.NotFoundError("no such user"),
			check: app.IsNotFoundError,
		},
		{
			name:  "rate limited",
			err:   app.RateLimitedError("quota exhausted"),
			check: app.IsRateLimitedError,
		},
		{
			name:  "too many requests",
			err:   app.TooManyRequestsError("slow down"),
			check: app.IsTooManyRequestsError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(errors.Wrap(tt.err, "wrapped")), "check must see through wrapping")
			assert.False(t, tt.check(plainErr))
			assert.False(t, tt.check(nil))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
