package client

import (
	"context"
	"testing"
	"time"

	"github.com/michaelgwelch/metasys-go/pkg/metasys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/objects":            `{"items": [{"id": "o1", "itemReference": "site1:dev1/av1"}], "next": "", "total": 1}`,
		"/objects/o1":         `{"id": "o1", "name": "Zone Temp", "type": "analogValue"}`,
		"/objects/o1/objects": `{"items": [{"id": "o2"}, {"id": "o3"}], "next": "", "total": 2}`,
	})

	objects, err := metasys.Collect(c.Objects().List(context.Background(), nil))
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "site1:dev1/av1", objects[0].ItemReference)

	object, err := c.Objects().Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Zone Temp", object.Name)

	children, err := metasys.Collect(c.Objects().Children(context.Background(), "o1", nil))
	require.NoError(t, err)
	assert.Len(t, children, 2)

	require.Len(t, recorder.requests, 3)
	assert.Equal(t, "/api/v1/objects", recorder.requests[0].Path)
	assert.Equal(t, "/api/v1/objects/o1", recorder.requests[1].Path)
	assert.Equal(t, "/api/v1/objects/o1/objects", recorder.requests[2].Path)
}

func TestAuditsClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/audits":            `{"items": [{"id": "au1", "actionType": "Write"}], "next": "", "total": 1}`,
		"/audits/au1":        `{"id": "au1", "user": "operator"}`,
		"/objects/o1/audits": `{"items": [{"id": "au2"}], "next": "", "total": 1}`,
	})

	audits, err := metasys.Collect(c.Audits().List(context.Background(), nil))
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "Write", audits[0].ActionType)

	// Unscoped audit listings default the time window like alarms do.
	assert.NotEmpty(t, recorder.requests[0].Query().Get("startTime"))
	assert.NotEmpty(t, recorder.requests[0].Query().Get("endTime"))

	audit, err := c.Audits().Get(context.Background(), "au1")
	require.NoError(t, err)
	assert.Equal(t, "operator", audit.User)

	scoped, err := metasys.Collect(c.Audits().ListForObject(context.Background(), "o1", nil))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "/api/v1/objects/o1/audits", recorder.requests[2].Path)
}

func TestEquipmentClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/equipment":                      `{"items": [{"id": "e1", "name": "AHU-1"}], "next": "", "total": 1}`,
		"/equipment/e1":                   `{"id": "e1", "type": "airHandler"}`,
		"/networkDevices/dev-1/equipment": `{"items": [{"id": "e2"}], "next": "", "total": 1}`,
	})

	equipment, err := metasys.Collect(c.Equipment().List(context.Background(), nil))
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	assert.Equal(t, "AHU-1", equipment[0].Name)

	item, err := c.Equipment().Get(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "airHandler", item.Type)

	scoped, err := metasys.Collect(c.Equipment().ListForNetworkDevice(context.Background(), "dev-1", nil))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "/api/v1/networkDevices/dev-1/equipment", recorder.requests[2].Path)
}

func TestSpacesClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/spaces":              `{"items": [{"id": "s1", "name": "Floor 3"}], "next": "", "total": 1}`,
		"/spaces/s1":           `{"id": "s1", "type": "floor"}`,
		"/spaces/s1/equipment": `{"items": [{"id": "e1"}], "next": "", "total": 1}`,
	})

	spaces, err := metasys.Collect(c.Spaces().List(context.Background(), nil))
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "Floor 3", spaces[0].Name)

	space, err := c.Spaces().Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "floor", space.Type)

	equipment, err := metasys.Collect(c.Spaces().ListEquipment(context.Background(), "s1", nil))
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	assert.Equal(t, "/api/v1/spaces/s1/equipment", recorder.requests[2].Path)
}

func TestTrendedAttributesClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/objects/o1/trendedAttributes": `{"items": [{"attribute": "attr-85", "name": "Present Value"}], "next": "", "total": 1}`,
	})

	attributes, err := metasys.Collect(c.TrendedAttributes().ListForObject(context.Background(), "o1", nil))
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "attr-85", attributes[0].Attribute)
	assert.Equal(t, "Present Value", attributes[0].Name)

	require.Len(t, recorder.requests, 1)
	assert.Equal(t, "/api/v1/objects/o1/trendedAttributes", recorder.requests[0].Path)
}

func TestSamplesClient(t *testing.T) {
	t.Parallel()

	recorder, c := newTestClient(t, map[string]string{
		"/objects/o1/attributes/attr-85/samples": `{
			"items": [
				{"timestamp": "2026-08-23T10:00:00Z", "value": {"value": 21.5, "units": "degC"}, "isReliable": true}
			],
			"next": "",
			"total": 1
		}`,
	})

	samples, err := metasys.Collect(c.Samples().List(context.Background(), "o1", "attr-85", nil))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC), samples[0].Timestamp)
	assert.Equal(t, 21.5, samples[0].Value.Value)
	assert.Equal(t, "degC", samples[0].Value.Units)
	assert.True(t, samples[0].IsReliable)

	require.Len(t, recorder.requests, 1)
	assert.Equal(t, "/api/v1/objects/o1/attributes/attr-85/samples", recorder.requests[0].Path)
}

func TestMissingCollectionsAreEmpty(t *testing.T) {
	t.Parallel()

	_, c := newTestClient(t, nil)

	equipment, err := metasys.Collect(c.Equipment().List(context.Background(), nil))
	require.NoError(t, err)
	assert.Empty(t, equipment)
}
