package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// EquipmentClient implements metasys.EquipmentClient.
type EquipmentClient struct {
	httpClient *http.Client
}

// NewEquipmentClient creates a new equipment client.
func NewEquipmentClient(httpClient *http.Client) *EquipmentClient {
	return &EquipmentClient{httpClient: httpClient}
}

// List implements metasys.EquipmentClient.List.
func (c *EquipmentClient) List(ctx context.Context, params *metasys.QueryParams) metasys.Seq[metasys.Equipment] {
	return paginate[metasys.Equipment](ctx, c.httpClient, "/equipment", withPageSizeDefault(params))
}

// Get implements metasys.EquipmentClient.Get.
func (c *EquipmentClient) Get(ctx context.Context, equipmentID string) (*metasys.Equipment, error) {
	return getOne[metasys.Equipment](ctx, c.httpClient, "/equipment/"+equipmentID)
}

// ListForNetworkDevice implements metasys.EquipmentClient.ListForNetworkDevice.
func (c *EquipmentClient) ListForNetworkDevice(ctx context.Context, deviceID string, params *metasys.QueryParams) metasys.Seq[metasys.Equipment] {
	return paginate[metasys.Equipment](ctx, c.httpClient, "/networkDevices/"+deviceID+"/equipment", withPageSizeDefault(params))
}
