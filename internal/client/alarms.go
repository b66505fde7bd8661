package client

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// AlarmsClient implements metasys.AlarmsClient.
type AlarmsClient struct {
	httpClient *http.Client
}

// NewAlarmsClient creates a new alarms client.
func NewAlarmsClient(httpClient *http.Client) *AlarmsClient {
	return &AlarmsClient{httpClient: httpClient}
}

// List implements metasys.AlarmsClient.List. Without device or object
// scoping the server would return the full alarm history, so the window
// defaults to the start of the current day through now.
func (c *AlarmsClient) List(ctx context.Context, params *metasys.QueryParams) metasys.Seq[metasys.Alarm] {
	return paginate[metasys.Alarm](ctx, c.httpClient, "/alarms", withTimeWindowDefault(params))
}

// Get implements metasys.AlarmsClient.Get.
func (c *AlarmsClient) Get(ctx context.Context, alarmID string) (*metasys.Alarm, error) {
	return getOne[metasys.Alarm](ctx, c.httpClient, "/alarms/"+alarmID)
}

// ListForNetworkDevice implements metasys.AlarmsClient.ListForNetworkDevice.
func (c *AlarmsClient) ListForNetworkDevice(ctx context.Context, deviceID string, params *metasys.QueryParams) metasys.Seq[metasys.Alarm] {
	return paginate[metasys.Alarm](ctx, c.httpClient, "/networkDevices/"+deviceID+"/alarms", withPageSizeDefault(params))
}

// ListForObject implements metasys.AlarmsClient.ListForObject.
func (c *AlarmsClient) ListForObject(ctx context.Context, objectID string, params *metasys.QueryParams) metasys.Seq[metasys.Alarm] {
	return paginate[metasys.Alarm](ctx, c.httpClient, "/objects/"+objectID+"/alarms", withPageSizeDefault(params))
}
