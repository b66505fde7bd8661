package metasys

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryParams represents query parameters for collection requests.
type QueryParams struct {
	// Page is the page number to start at (1-based).
	Page int
	// PageSize is the number of items per server page.
	PageSize int
	// Sort orders the result set; prefix with "-" for descending.
	Sort string
	// StartTime and EndTime bound time-windowed collections (alarms, audits).
	StartTime time.Time
	EndTime   time.Time
	// Filters holds additional endpoint-specific parameters, passed through
	// verbatim (priority ranges, type identifiers, ...). Multiple values for
	// a key are comma-joined.
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page
	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size
	return q
}

// WithSort sets the sort order.
func (q *QueryParams) WithSort(sort string) *QueryParams {
	q.Sort = sort
	return q
}

// WithStartTime sets the inclusive lower bound of the time window.
func (q *QueryParams) WithStartTime(t time.Time) *QueryParams {
	q.StartTime = t
	return q
}

// WithEndTime sets the exclusive upper bound of the time window.
func (q *QueryParams) WithEndTime(t time.Time) *QueryParams {
	q.EndTime = t
	return q
}

// WithFilter appends values to a filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// Clone returns a copy that can be modified without affecting the original.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q
	clone.Filters = make(map[string][]string, len(q.Filters))

	for key, values := range q.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return &clone
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	if !q.StartTime.IsZero() {
		values.Set("startTime", q.StartTime.Format(time.RFC3339))
	}

	if !q.EndTime.IsZero() {
		values.Set("endTime", q.EndTime.Format(time.RFC3339))
	}

	for key, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
