package metasys

import (
	"context"
	"crypto/x509"
	"net/http"
	"time"
)

// Client is the programmatic surface of the API. It is created
// unauthenticated; a successful Login binds it to a server and credential,
// after which the session state is read-only and safe to share between
// concurrently iterated sequences.
type Client interface {
	// Login performs the login exchange against
	// "{scheme}://{host}/api/v1/login". It reports success as a boolean and
	// never surfaces the underlying error directly; on failure the
	// diagnostic classifies what went wrong.
	Login(ctx context.Context, username, password, host string) (bool, *LoginFailure)

	Alarms() AlarmsClient
	NetworkDevices() NetworkDevicesClient
	Objects() ObjectsClient
	Audits() AuditsClient
	Equipment() EquipmentClient
	Spaces() SpacesClient
	TrendedAttributes() TrendedAttributesClient
	Samples() SamplesClient
}

// AlarmsClient accesses the alarm collection.
type AlarmsClient interface {
	// List fetches alarms. When the caller supplies neither a time window
	// nor device/object scoping, the window defaults to the start of the
	// current day through now.
	List(ctx context.Context, params *QueryParams) Seq[Alarm]
	Get(ctx context.Context, alarmID string) (*Alarm, error)
	ListForNetworkDevice(ctx context.Context, deviceID string, params *QueryParams) Seq[Alarm]
	ListForObject(ctx context.Context, objectID string, params *QueryParams) Seq[Alarm]
}

// NetworkDevicesClient accesses the network device collection.
type NetworkDevicesClient interface {
	List(ctx context.Context, params *QueryParams) Seq[NetworkDevice]
	Get(ctx context.Context, deviceID string) (*NetworkDevice, error)
	// ListSupervisory fetches supervisory engines: one paginated fetch per
	// engine class identifier in the fixed allow-list, concatenated in list
	// order.
	ListSupervisory(ctx context.Context, params *QueryParams) Seq[NetworkDevice]
}

// ObjectsClient accesses the object hierarchy.
type ObjectsClient interface {
	List(ctx context.Context, params *QueryParams) Seq[ObjectEntry]
	Get(ctx context.Context, objectID string) (*ObjectEntry, error)
	Children(ctx context.Context, objectID string, params *QueryParams) Seq[ObjectEntry]
}

// AuditsClient accesses the audit trail.
type AuditsClient interface {
	// List fetches audits with the same default time window as alarms.
	List(ctx context.Context, params *QueryParams) Seq[Audit]
	Get(ctx context.Context, auditID string) (*Audit, error)
	ListForObject(ctx context.Context, objectID string, params *QueryParams) Seq[Audit]
}

// EquipmentClient accesses equipment instances.
type EquipmentClient interface {
	List(ctx context.Context, params *QueryParams) Seq[Equipment]
	Get(ctx context.Context, equipmentID string) (*Equipment, error)
	ListForNetworkDevice(ctx context.Context, deviceID string, params *QueryParams) Seq[Equipment]
}

// SpacesClient accesses buildings, floors, and rooms.
type SpacesClient interface {
	List(ctx context.Context, params *QueryParams) Seq[Space]
	Get(ctx context.Context, spaceID string) (*Space, error)
	ListEquipment(ctx context.Context, spaceID string, params *QueryParams) Seq[Equipment]
}

// TrendedAttributesClient lists which attributes of an object are trended.
type TrendedAttributesClient interface {
	ListForObject(ctx context.Context, objectID string, params *QueryParams) Seq[TrendedAttribute]
}

// SamplesClient accesses recorded samples of a trended attribute.
type SamplesClient interface {
	List(ctx context.Context, objectID, attributeID string, params *QueryParams) Seq[Sample]
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// # Authentication
//
// The usual flow is to create an unauthenticated client and call Login,
// which establishes the base address "https://{host}/api/v1" and stores the
// bearer token returned by the server. Alternatively, Host plus AccessToken
// binds the client immediately with a pre-issued token.
//
// # Transport
//
// HTTPClient injects the transport used for every request, login included;
// this is the seam tests and proxies hook into. Without it the client
// builds its own transport, honoring RootCAs for servers with self-signed
// certificates. Retries are disabled unless RetryMax is set: transient
// failures surface to the consumer at the point of iteration.
type Config struct {
	// Host is the server to bind to. Optional: the host argument of Login
	// takes precedence. A scheme prefix ("https://") is accepted and
	// stripped; it overrides Scheme.
	Host string
	// Scheme selects http or https. Defaults to https.
	Scheme string
	// AccessToken, combined with Host, binds the client without a login
	// exchange.
	AccessToken string

	// HTTPClient, when set, is used for every request instead of the
	// client's own transport.
	HTTPClient *http.Client
	// RootCAs supplies additional trusted roots, typically the controller's
	// self-signed certificate.
	RootCAs *x509.CertPool
	// HTTPTimeout bounds each request when the client builds its own
	// transport. Zero means the transport default.
	HTTPTimeout time.Duration

	// RetryMax enables transparent retries of transient failures when
	// greater than zero. Off by default.
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
}
