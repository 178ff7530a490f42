package main

import (
	netHttp "net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/gitwrapped/gitwrapped/internal/adapter/contribapi"
	"github.com/gitwrapped/gitwrapped/internal/adapter/github"
	"github.com/gitwrapped/gitwrapped/internal/api/http"
	"github.com/gitwrapped/gitwrapped/internal/api/http/limiter"
	"github.com/gitwrapped/gitwrapped/internal/app"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	// Local .env overrides are optional.
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	rateLimits := github.NewRateLimitTracker()
	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubGraphQLAddress,
		conf.GithubAPIToken,
		rateLimits,
	)
	contribClient := contribapi.NewClient(
		limitedHTTPClient,
		conf.ContributionsAPIAddress,
	)

	bundleCache, err := app.NewBundleCache(
		conf.BundleCacheSize,
		conf.BundleCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create bundle cache: %v", err)
	}

	service := app.NewService(
		githubClient,
		contribClient,
		bundleCache,
		githubClient.Authenticated(),
		l.WithField("component", "service"),
	)

	mux := http.NewMux(service, conf.HTTPHandlerTimeout, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
