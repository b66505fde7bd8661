package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// defaultPageSize applies when the caller does not pick a page size.
const defaultPageSize = 100

// fetcher adapts the HTTP client to metasys.PageFetcher for one item type.
type fetcher[T any] struct {
	httpClient *http.Client
}

// FetchPage implements metasys.PageFetcher.FetchPage.
func (f fetcher[T]) FetchPage(ctx context.Context, path string, query url.Values) (*metasys.Page[T], error) {
	resp, err := f.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var page metasys.Page[T]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page at %s: %w", path, err)
	}

	return &page, nil
}

// paginate returns a lazy sequence over the collection at path.
func paginate[T any](ctx context.Context, httpClient *http.Client, path string, params *metasys.QueryParams) metasys.Seq[T] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return metasys.Paginate(ctx, fetcher[T]{httpClient: httpClient}, path, query)
}

// getOne fetches and decodes a single resource.
func getOne[T any](ctx context.Context, httpClient *http.Client, path string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var item T

	err = json.Unmarshal(resp.Body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &item, nil
}

// withPageSizeDefault clones params and fills in the default page size.
func withPageSizeDefault(params *metasys.QueryParams) *metasys.QueryParams {
	merged := params.Clone()
	if merged.PageSize == 0 {
		merged.PageSize = defaultPageSize
	}

	return merged
}

// withTimeWindowDefault clones params and, when the caller set no window at
// all, defaults it to the start of the current day through now.
func withTimeWindowDefault(params *metasys.QueryParams) *metasys.QueryParams {
	merged := withPageSizeDefault(params)
	if !merged.StartTime.IsZero() || !merged.EndTime.IsZero() {
		return merged
	}

	now := time.Now()
	year, month, day := now.Date()
	merged.StartTime = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	merged.EndTime = now

	return merged
}
