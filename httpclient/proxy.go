package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// ProxyConfig configures an outbound proxy for the client.
type ProxyConfig struct {
	// URL of the proxy, e.g. "http://proxy.internal:3128".
	URL string `yaml:"url" mapstructure:"url"`

	// BasicAuthUsername and BasicAuthPassword configure proxy basic auth.
	// Basic auth takes precedence over CustomAuthHeader when both are set.
	BasicAuthUsername string `yaml:"basic_auth_username" mapstructure:"basic_auth_username"`
	BasicAuthPassword string `yaml:"basic_auth_password" mapstructure:"basic_auth_password"`

	// CustomAuthHeader is sent as Proxy-Authorization on CONNECT when
	// basic auth is not configured.
	CustomAuthHeader string `yaml:"custom_auth_header" mapstructure:"custom_auth_header"`

	// ExclusionList holds hosts that bypass the proxy (NO_PROXY semantics:
	// hostnames, domains, IPs, or CIDR blocks).
	ExclusionList []string `yaml:"exclusion_list" mapstructure:"exclusion_list"`
}

// Validate checks the proxy configuration without touching the network.
func (p *ProxyConfig) Validate() error {
	if _, err := p.parseURL(); err != nil {
		return err
	}
	if strings.ContainsAny(p.CustomAuthHeader, "\r\n") {
		return newError(ErrCodeProxyInvalid, "custom auth header contains control characters", nil)
	}
	return nil
}

func (p *ProxyConfig) parseURL() (*url.URL, error) {
	proxyURL, err := url.Parse(p.URL)
	if err != nil || proxyURL.Scheme == "" || proxyURL.Host == "" {
		return nil, newError(ErrCodeProxyInvalid, fmt.Sprintf("malformed proxy URL %q", p.URL), err)
	}
	return proxyURL, nil
}

// apply wires the proxy into the transport: proxy function with the
// exclusion list, plus either basic auth or a custom Proxy-Authorization
// header.
func (p *ProxyConfig) apply(transport *http.Transport) error {
	if err := p.Validate(); err != nil {
		return err
	}
	proxyURL, err := p.parseURL()
	if err != nil {
		return err
	}

	switch {
	case p.BasicAuthUsername != "" && p.BasicAuthPassword != "":
		proxyURL.User = url.UserPassword(p.BasicAuthUsername, p.BasicAuthPassword)
	case p.CustomAuthHeader != "":
		if transport.ProxyConnectHeader == nil {
			transport.ProxyConnectHeader = http.Header{}
		}
		transport.ProxyConnectHeader.Set("Proxy-Authorization", p.CustomAuthHeader)
	}

	cfg := &httpproxy.Config{
		HTTPProxy:  proxyURL.String(),
		HTTPSProxy: proxyURL.String(),
		NoProxy:    strings.Join(p.ExclusionList, ","),
	}
	proxyFunc := cfg.ProxyFunc()
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}
	return nil
}
