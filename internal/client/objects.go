package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// ObjectsClient implements metasys.ObjectsClient.
type ObjectsClient struct {
	httpClient *http.Client
}

// NewObjectsClient creates a new objects client.
func NewObjectsClient(httpClient *http.Client) *ObjectsClient {
	return &ObjectsClient{httpClient: httpClient}
}

// List implements metasys.ObjectsClient.List.
func (c *ObjectsClient) List(ctx context.Context, params *metasys.QueryParams) metasys.Seq[metasys.ObjectEntry] {
	return paginate[metasys.ObjectEntry](ctx, c.httpClient, "/objects", withPageSizeDefault(params))
}

// Get implements metasys.ObjectsClient.Get.
func (c *ObjectsClient) Get(ctx context.Context, objectID string) (*metasys.ObjectEntry, error) {
	return getOne[metasys.ObjectEntry](ctx, c.httpClient, "/objects/"+objectID)
}

// Children implements metasys.ObjectsClient.Children.
func (c *ObjectsClient) Children(ctx context.Context, objectID string, params *metasys.QueryParams) metasys.Seq[metasys.ObjectEntry] {
	return paginate[metasys.ObjectEntry](ctx, c.httpClient, "/objects/"+objectID+"/objects", withPageSizeDefault(params))
}
