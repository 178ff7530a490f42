package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPHandlerTimeout - timeout for handling a single request
	HTTPHandlerTimeout time.Duration `default:"60s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubGraphQLAddress - address for the graphql contributions api
	GithubGraphQLAddress string `default:"https://api.github.com/graphql"`

	// GithubAPIToken - auth token for github apis (optional, contribution summaries require it)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for outbound api calls
	GithubAPIRateLimit float64 `default:"2"`

	// ContributionsAPIAddress - address of the unauthenticated fallback calendar source
	ContributionsAPIAddress string `default:"https://github-contributions-api.jogruber.de/v4"`

	// BundleCacheSize - maximum number of cached acquisition bundles
	BundleCacheSize int `default:"1000"`

	// BundleCacheTTL - maximum lifetime for cached bundles
	BundleCacheTTL time.Duration `default:"5m"`
}
