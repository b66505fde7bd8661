package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// TrendedAttributesClient implements metasys.TrendedAttributesClient.
type TrendedAttributesClient struct {
	httpClient *http.Client
}

// NewTrendedAttributesClient creates a new trended attributes client.
func NewTrendedAttributesClient(httpClient *http.Client) *TrendedAttributesClient {
	return &TrendedAttributesClient{httpClient: httpClient}
}

// ListForObject implements metasys.TrendedAttributesClient.ListForObject.
func (c *TrendedAttributesClient) ListForObject(ctx context.Context, objectID string, params *metasys.QueryParams) metasys.Seq[metasys.TrendedAttribute] {
	return paginate[metasys.TrendedAttribute](ctx, c.httpClient, "/objects/"+objectID+"/trendedAttributes", withPageSizeDefault(params))
}
