package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// SpacesClient implements metasys.SpacesClient.
type SpacesClient struct {
	httpClient *http.Client
}

// NewSpacesClient creates a new spaces client.
func NewSpacesClient(httpClient *http.Client) *SpacesClient {
	return &SpacesClient{httpClient: httpClient}
}

// List implements metasys.SpacesClient.List.
func (c *SpacesClient) List(ctx context.Context, params *metasys.QueryParams) metasys.Seq[metasys.Space] {
	return paginate[metasys.Space](ctx, c.httpClient, "/spaces", withPageSizeDefault(params))
}

// Get implements metasys.SpacesClient.Get.
func (c *SpacesClient) Get(ctx context.Context, spaceID string) (*metasys.Space, error) {
	return getOne[metasys.Space](ctx, c.httpClient, "/spaces/"+spaceID)
}

// ListEquipment implements metasys.SpacesClient.ListEquipment.
func (c *SpacesClient) ListEquipment(ctx context.Context, spaceID string, params *metasys.QueryParams) metasys.Seq[metasys.Equipment] {
	return paginate[metasys.Equipment](ctx, c.httpClient, "/spaces/"+spaceID+"/equipment", withPageSizeDefault(params))
}
