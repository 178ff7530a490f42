package github

import (
	"context"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

// pagedConfig bounds a pagination run.
type pagedConfig struct {
	perPage  int
	maxItems int
	// maxPages is a hard page ceiling, 0 means unbounded.
	maxPages int
	// softFail makes any page error after the first end the run with
	// whatever was already collected instead of failing it.
	softFail bool
}

// fetchPaged requests successive pages until the accumulated items
// reach maxItems, a page comes back short (last page), or the page
// ceiling is hit. A 404 on the first page always surfaces as NotFound.
func fetchPaged[T any](ctx context.Context, cfg pagedConfig, fetch func(ctx context.Context, page int) ([]T, error)) ([]T, error) {
	var items []T
	for page := 1; len(items) < cfg.maxItems; page++ {
		if cfg.maxPages > 0 && page > cfg.maxPages {
			break
		}

		pageItems, err := fetch(ctx, page)
		if err != nil {
			if page == 1 && app.IsNotFoundError(err) {
				return nil, err
			}
			if cfg.softFail {
				break
			}
			return nil, err
		}
		if len(pageItems) == 0 {
			break
		}

		items = append(items, pageItems...)

		if len(pageItems) < cfg.perPage {
			break
		}
	}

	if len(items) > cfg.maxItems {
		items = items[:cfg.maxItems]
	}

	return items, nil
}
