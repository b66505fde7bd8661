package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// SamplesClient implements metasys.SamplesClient.
type SamplesClient struct {
	httpClient *http.Client
}

// NewSamplesClient creates a new samples client.
func NewSamplesClient(httpClient *http.Client) *SamplesClient {
	return &SamplesClient{httpClient: httpClient}
}

// List implements metasys.SamplesClient.List.
func (c *SamplesClient) List(ctx context.Context, objectID, attributeID string, params *metasys.QueryParams) metasys.Seq[metasys.Sample] {
	path := "/objects/" + objectID + "/attributes/" + attributeID + "/samples"

	return paginate[metasys.Sample](ctx, c.httpClient, path, withPageSizeDefault(params))
}
