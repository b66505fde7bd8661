package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"syscall"
	"time"

	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// loginRequest is the JSON body of the login exchange.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the JSON body of a successful login exchange.
type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	Expires     time.Time `json:"expires"`
}

// Login implements metasys.Client.Login. It POSTs the credentials to
// "{scheme}://{host}/api/v1/login", following redirects (307/308 preserve
// method and body). On success the session is bound to the host and the
// returned bearer token; on failure it reports false with a classified
// diagnostic instead of surfacing the error.
func (c *Client) Login(ctx context.Context, username, password, host string) (bool, *metasys.LoginFailure) {
	if host == "" {
		host = c.config.Host
	}

	if host == "" {
		return false, &metasys.LoginFailure{
			Reason:  metasys.LoginFailureUnclassified,
			Message: "no host given",
			Err:     metasys.ErrHostRequired,
		}
	}

	scheme, host := normalizeHost(host, c.config.Scheme)
	base := apiBase(scheme, host)

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return false, &metasys.LoginFailure{
			Reason:  metasys.LoginFailureUnclassified,
			Message: err.Error(),
			Err:     err,
		}
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, base+"/login", bytes.NewReader(body))
	if err != nil {
		return false, &metasys.LoginFailure{
			Reason:  metasys.LoginFailureUnclassified,
			Message: err.Error(),
			Err:     err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.HTTPClient().Do(req)
	if err != nil {
		return false, classifyTransportFailure(err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != nethttp.StatusOK {
		return false, classifyStatusFailure(resp.StatusCode)
	}

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, &metasys.LoginFailure{
			Reason:  metasys.LoginFailureUnclassified,
			Message: "malformed login response: " + err.Error(),
			Err:     err,
		}
	}

	if parsed.AccessToken == "" {
		return false, &metasys.LoginFailure{
			Reason:  metasys.LoginFailureUnclassified,
			Message: metasys.ErrTokenEmpty.Error(),
			Err:     metasys.ErrTokenEmpty,
		}
	}

	c.tokens.SetToken(parsed.AccessToken, parsed.Expires)
	c.httpClient.SetBaseURL(base)

	return true, nil
}

// classifyTransportFailure maps an error from the login request to a
// diagnostic. The checks go from most to least specific: certificate
// problems also look like connection problems from the outside.
func classifyTransportFailure(err error) *metasys.LoginFailure {
	failure := &metasys.LoginFailure{
		Reason:  metasys.LoginFailureUnclassified,
		Message: err.Error(),
		Err:     err,
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		failure.Reason = metasys.LoginFailureUnknownHost
		failure.Message = "host could not be resolved: " + dnsErr.Name

		return failure
	}

	var certVerifyErr *tls.CertificateVerificationError

	var unknownAuthErr x509.UnknownAuthorityError

	var hostnameErr x509.HostnameError

	if errors.As(err, &certVerifyErr) || errors.As(err, &unknownAuthErr) || errors.As(err, &hostnameErr) {
		failure.Reason = metasys.LoginFailureUntrustedCertificate
		failure.Message = "server certificate is not trusted; supply its root CA via Config.RootCAs"

		return failure
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		failure.Reason = metasys.LoginFailureConnection
		failure.Message = "server or proxy refused the connection"

		return failure
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		failure.Reason = metasys.LoginFailureConnection
		failure.Message = "connection failed: " + opErr.Err.Error()

		return failure
	}

	return failure
}

// classifyStatusFailure maps a non-200 login response to a diagnostic.
func classifyStatusFailure(statusCode int) *metasys.LoginFailure {
	if statusCode == nethttp.StatusUnauthorized || statusCode == nethttp.StatusForbidden {
		return &metasys.LoginFailure{
			Reason:  metasys.LoginFailureBadCredentials,
			Message: "username or password rejected",
			Err:     &metasys.APIError{StatusCode: statusCode},
		}
	}

	return &metasys.LoginFailure{
		Reason:  metasys.LoginFailureUnclassified,
		Message: fmt.Sprintf("login endpoint answered with status %d", statusCode),
		Err:     &metasys.APIError{StatusCode: statusCode},
	}
}
