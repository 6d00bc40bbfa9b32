package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/tlskit/tlskit/logger"
	"github.com/tlskit/tlskit/security"
	"github.com/tlskit/tlskit/version"
)

// Client is an immutable handle for issuing requests to one server. It is
// safe to share across goroutines; rebuilding for certificate rotation
// means calling New again and swapping the handle at the call site.
type Client struct {
	// ServerURL is the normalized base URL, with no trailing slash.
	ServerURL string

	httpClient *http.Client
	config     Config
	verifier   *security.TrustVerifier
}

// New assembles a client from the configuration.
//
// Assembly is synchronous and performs blocking file reads for client
// identity material; call it during startup, not on a request path. Each
// call produces an independent handle and touches no global state.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("httpclient")

	// Cipher-suite resolution. A list that resolves to nothing falls back
	// to library defaults instead of failing the build: an operator typo
	// must not take down HTTP egress. Identity failures below get no such
	// fallback.
	var suites []uint16
	if cfg.CipherSuites != "" {
		resolved, unknown, err := security.ResolveCipherSuites(cfg.CipherSuites)
		if err != nil {
			log.Error("cipher suite resolution failed, falling back to default suites",
				logger.Fields("cipher_suites", cfg.CipherSuites, "error", err.Error()))
		} else {
			for _, name := range unknown {
				log.Warn("ignoring unknown cipher suite", logger.Fields("name", name))
			}
			suites = resolved
		}
	}

	var pinned []byte
	if cfg.VerifiedCert != "" {
		der, err := security.ParsePinnedCertificate([]byte(cfg.VerifiedCert))
		if err != nil {
			return nil, newError(ErrCodePinnedCertInvalid, "parsing pinned certificate", err)
		}
		pinned = der
	}
	verifier := security.SelectVerifier(pinned, cfg.AcceptInvalidCerts)

	var identity *tls.Certificate
	switch {
	case cfg.SSLClientPEMCertPath != "":
		cert, err := security.LoadPEMIdentity(cfg.SSLClientPEMCertPath, cfg.SSLClientPEMKeyPath)
		if err != nil {
			return nil, classifyIdentityError(err)
		}
		identity = &cert
	case cfg.SSLClientPKCS12Path != "":
		cert, err := security.LoadPKCS12Identity(cfg.SSLClientPKCS12Path, cfg.SSLClientPKCS12Password)
		if err != nil {
			return nil, classifyIdentityError(err)
		}
		identity = &cert
	}

	serverURL := strings.TrimSuffix(cfg.ServerURL, "/")

	tlsCfg := security.BuildTLSConfig(security.TLSParams{
		Verifier:     verifier,
		CipherSuites: suites,
		Identity:     identity,
		ServerName:   hostnameOf(serverURL),
	})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsCfg

	if cfg.Proxy != nil {
		if err := cfg.Proxy.apply(transport); err != nil {
			return nil, err
		}
	}

	log.Info("client assembled", logger.Fields(
		"server_url", serverURL,
		"verifier", verifier.Kind.String(),
	))

	return &Client{
		ServerURL: serverURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config:   cfg,
		verifier: verifier,
	}, nil
}

// Verifier returns the trust verifier selected for this client.
func (c *Client) Verifier() *security.TrustVerifier {
	return c.verifier
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes an HTTP request against the assembled transport and returns
// the complete response.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("httpclient: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if c.ServerURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = c.ServerURL + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Request-level auth wins over the client-level access token.
	switch {
	case req.Auth != nil:
		req.Auth.apply(httpReq)
	case c.config.AccessToken != "":
		BearerAuth(c.config.AccessToken).apply(httpReq)
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// hostnameOf extracts the hostname used for certificate verification.
func hostnameOf(serverURL string) string {
	u, err := url.Parse(serverURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
