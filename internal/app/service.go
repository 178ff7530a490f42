package app

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GithubClient fetches a user's data from the github api.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/gitwrapped/gitwrapped/internal/app GithubClient
type GithubClient interface {
	Profile(ctx context.Context, username string) (Profile, error)
	Repositories(ctx context.Context, username string) ([]Repository, error)
	Events(ctx context.Context, username string) ([]Event, error)
	// ContributionSummary queries the authenticated primary source.
	// Returns (nil, nil) when no credential is configured.
	ContributionSummary(ctx context.Context, username string, year int) (*ContributionSummary, error)
}

// ContributionSource fetches a best-effort contribution calendar from
// an alternate public source.
//go:generate mockgen -destination mock/contribsource.go -package mock github.com/gitwrapped/gitwrapped/internal/app ContributionSource
type ContributionSource interface {
	Calendar(ctx context.Context, username string, year int) (*ContributionCalendar, error)
}

// Service is main apps entry point. Acquires the raw bundle and
// computes yearly insights from it.
type Service struct {
	githubClient  GithubClient
	fallback      ContributionSource
	cache         *BundleCache
	authenticated bool
	l             logrus.FieldLogger

	// now is replaceable for deterministic streak tests.
	now func() time.Time
}

// NewService creates new Service instance.
// authenticated tells whether the github client carries a credential;
// it selects the cache keyspace.
func NewService(
	githubClient GithubClient,
	fallback ContributionSource,
	cache *BundleCache,
	authenticated bool,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient:  githubClient,
		fallback:      fallback,
		cache:         cache,
		authenticated: authenticated,
		l:             l,
		now:           time.Now,
	}
}

// Wrapped acquires all data for the given user and year and reduces it
// to insights.
//
// Profile and repository failures are fatal. Event failures degrade to
// an empty feed, contribution source failures to an absent source; the
// insights engine reconciles whatever remains.
func (s *Service) Wrapped(ctx context.Context, username string, year int) (Wrapped, error) {
	if username == "" {
		return Wrapped{}, InvalidRequestError("username cannot be empty")
	}
	if year < 2008 || year > s.now().Year() {
		return Wrapped{}, InvalidRequestError("year out of range")
	}

	bundle, err := s.acquire(ctx, username, year)
	if err != nil {
		return Wrapped{}, err
	}

	return Wrapped{
		Profile:  bundle.Profile,
		Year:     year,
		Insights: ComputeInsights(bundle, year, s.now()),
	}, nil
}

// acquire returns the raw bundle, from cache when fresh enough,
// otherwise by fanning out the five source fetches concurrently and
// joining the settled results.
func (s *Service) acquire(ctx context.Context, username string, year int) (Bundle, error) {
	key := BundleCacheKey(username, year, s.authenticated)
	if bundle, ok := s.cache.Get(key); ok {
		return bundle, nil
	}

	var (
		profile     Profile
		profileErr  error
		repos       []Repository
		reposErr    error
		events      []Event
		eventsErr   error
		summary     *ContributionSummary
		summaryErr  error
		fallbackCal *ContributionCalendar
		fallbackErr error
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		profile, profileErr = s.githubClient.Profile(ctx, username)
	}()
	go func() {
		defer wg.Done()
		repos, reposErr = s.githubClient.Repositories(ctx, username)
	}()
	go func() {
		defer wg.Done()
		events, eventsErr = s.githubClient.Events(ctx, username)
	}()
	go func() {
		defer wg.Done()
		summary, summaryErr = s.githubClient.ContributionSummary(ctx, username, year)
	}()
	go func() {
		defer wg.Done()
		fallbackCal, fallbackErr = s.fallback.Calendar(ctx, username, year)
	}()
	wg.Wait()

	if profileErr != nil {
		return Bundle{}, errors.Wrap(profileErr, "retrieving profile")
	}
	if reposErr != nil {
		return Bundle{}, errors.Wrap(reposErr, "retrieving repositories")
	}
	if eventsErr != nil {
		s.l.Errorf("retrieving events for %s: %v", username, eventsErr)
		events = nil
	}
	if summaryErr != nil {
		s.l.Errorf("retrieving contribution summary for %s: %v", username, summaryErr)
		summary = nil
	}
	if fallbackErr != nil {
		s.l.Errorf("retrieving fallback calendar for %s: %v", username, fallbackErr)
		fallbackCal = nil
	}

	bundle := Bundle{
		Profile:          profile,
		Repositories:     repos,
		Events:           events,
		Summary:          summary,
		FallbackCalendar: fallbackCal,
	}
	s.cache.Set(key, bundle)

	return bundle, nil
}
