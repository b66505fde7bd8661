// Package client implements the metasys.Client interface.
package client

import (
	"strings"

	"github.com/michaelgwelch/metasys-go/internal/auth"
	"github.com/michaelgwelch/metasys-go/internal/http"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// Client implements the capabilities of metasys.Client.
type Client struct {
	httpClient *http.Client
	tokens     *auth.Manager
	config     *metasys.Config

	// Resource clients
	alarms            metasys.AlarmsClient
	networkDevices    metasys.NetworkDevicesClient
	objects           metasys.ObjectsClient
	audits            metasys.AuditsClient
	equipment         metasys.EquipmentClient
	spaces            metasys.SpacesClient
	trendedAttributes metasys.TrendedAttributesClient
	samples           metasys.SamplesClient
}

// New creates a new client. The client is unauthenticated until Login
// succeeds, unless the config carries both a host and a pre-issued access
// token.
func New(config *metasys.Config) (*Client, error) {
	if config == nil {
		return nil, metasys.ErrConfigRequired
	}

	tokens := auth.NewManager()
	baseURL := ""

	if config.AccessToken != "" {
		if config.Host == "" {
			return nil, metasys.ErrHostRequired
		}

		tokens = auth.NewStatic(config.AccessToken)
		scheme, host := normalizeHost(config.Host, config.Scheme)
		baseURL = apiBase(scheme, host)
	}

	httpClient := http.NewClient(baseURL, tokens, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		tokens:     tokens,
		config:     config,
	}
	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds HTTP client options from config.
func httpOptions(config *metasys.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RootCAs != nil {
		opts = append(opts, http.WithRootCAs(config.RootCAs))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// normalizeHost splits an optional scheme prefix off the host and resolves
// the effective scheme, defaulting to https.
func normalizeHost(host, scheme string) (string, string) {
	host = strings.TrimSuffix(host, "/")

	if rest, ok := strings.CutPrefix(host, "https://"); ok {
		return "https", rest
	}

	if rest, ok := strings.CutPrefix(host, "http://"); ok {
		return "http", rest
	}

	if scheme == "" {
		scheme = "https"
	}

	return scheme, host
}

// apiBase builds the versioned API base address for a host.
func apiBase(scheme, host string) string {
	return scheme + "://" + host + "/api/v1"
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.alarms = NewAlarmsClient(c.httpClient)
	c.networkDevices = NewNetworkDevicesClient(c.httpClient)
	c.objects = NewObjectsClient(c.httpClient)
	c.audits = NewAuditsClient(c.httpClient)
	c.equipment = NewEquipmentClient(c.httpClient)
	c.spaces = NewSpacesClient(c.httpClient)
	c.trendedAttributes = NewTrendedAttributesClient(c.httpClient)
	c.samples = NewSamplesClient(c.httpClient)
}

// Alarms implements metasys.Client.Alarms.
func (c *Client) Alarms() metasys.AlarmsClient {
	return c.alarms
}

// NetworkDevices implements metasys.Client.NetworkDevices.
func (c *Client) NetworkDevices() metasys.NetworkDevicesClient {
	return c.networkDevices
}

// Objects implements metasys.Client.Objects.
func (c *Client) Objects() metasys.ObjectsClient {
	return c.objects
}

// Audits implements metasys.Client.Audits.
func (c *Client) Audits() metasys.AuditsClient {
	return c.audits
}

// Equipment implements metasys.Client.Equipment.
func (c *Client) Equipment() metasys.EquipmentClient {
	return c.equipment
}

// Spaces implements metasys.Client.Spaces.
func (c *Client) Spaces() metasys.SpacesClient {
	return c.spaces
}

// TrendedAttributes implements metasys.Client.TrendedAttributes.
func (c *Client) TrendedAttributes() metasys.TrendedAttributesClient {
	return c.trendedAttributes
}

// Samples implements metasys.Client.Samples.
func (c *Client) Samples() metasys.SamplesClient {
	return c.samples
}
