package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// AuditsClient implements metasys.AuditsClient.
type AuditsClient struct {
	httpClient *http.Client
}

// NewAuditsClient creates a new audits client.
func NewAuditsClient(httpClient *http.Client) *AuditsClient {
	return &AuditsClient{httpClient: httpClient}
}

// List implements metasys.AuditsClient.List. The time window defaults the
// same way as for alarms.
func (c *AuditsClient) List(ctx context.Context, params *metasys.QueryParams) metasys.Seq[metasys.Audit] {
	return paginate[metasys.Audit](ctx, c.httpClient, "/audits", withTimeWindowDefault(params))
}

// Get implements metasys.AuditsClient.Get.
func (c *AuditsClient) Get(ctx context.Context, auditID string) (*metasys.Audit, error) {
	return getOne[metasys.Audit](ctx, c.httpClient, "/audits/"+auditID)
}

// ListForObject implements metasys.AuditsClient.ListForObject.
func (c *AuditsClient) ListForObject(ctx context.Context, objectID string, params *metasys.QueryParams) metasys.Seq[metasys.Audit] {
	return paginate[metasys.Audit](ctx, c.httpClient, "/objects/"+objectID+"/audits", withPageSizeDefault(params))
}
