package metasys

import (
	"context"
	"net/url"
)

// PageFetcher fetches one page of a collection at a path. Implementations
// are expected to apply the session credential and decode the page body.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, path string, query url.Values) (*Page[T], error)
}

// Paginate returns a lazy sequence over a paginated collection. No request
// is issued until the sequence is first iterated. The query applies to the
// first page only; subsequent pages follow the server-supplied next link
// verbatim. Page K+1 is never requested before every item of page K has
// been consumed.
//
// A not-found response for the first page yields an empty sequence: some
// servers signal an empty collection that way. A not-found response on a
// later page likewise terminates the sequence cleanly, so consumers do not
// have to recheck status codes mid-stream. Any other fetch failure is
// delivered at the point of iteration, after the items already produced.
func Paginate[T any](ctx context.Context, fetcher PageFetcher[T], path string, query url.Values) Seq[T] {
	return func(yield func(T, error) bool) {
		current := path
		params := query

		for current != "" {
			page, err := fetcher.FetchPage(ctx, current, params)
			if err != nil {
				if IsNotFound(err) {
					return
				}

				var zero T

				yield(zero, err)

				return
			}

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}

			current = page.Next
			params = nil
		}
	}
}
