package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	err = errors.Cause(err)
	if ire, ok := err.(invalidReqErr); ok {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when the requested user doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by a missing resource
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	err = errors.Cause(err)
	if nfe, ok := err.(notFoundErr); ok {
		return nfe.IsNotFound()
	}

	return false
}

// RateLimitedError is returned when the upstream api quota is exhausted.
// The message carries the reset time when known.
type RateLimitedError string

// Error implements error interface
func (e RateLimitedError) Error() string {
	return string(e)
}

// IsRateLimited tells that this error is 'rate limited'.
// Returns always true.
func (RateLimitedError) IsRateLimited() bool {
	return true
}

// IsRateLimitedError checks if given error is caused by an exhausted api quota
func IsRateLimitedError(err error) bool {
	type rateLimitedErr interface {
		IsRateLimited() bool
	}

	err = errors.Cause(err)
	if rle, ok := err.(rateLimitedErr); ok {
		return rle.IsRateLimited()
	}

	return false
}

// TooManyRequestsError is returned when the outbound limiter rejects a call.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by request rate limiting
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	err = errors.Cause(err)
	if tmre, ok := err.(tooManyReqErr); ok {
		return tmre.IsTooManyRequests()
	}

	return false
}
