package httpclient

import (
	"time"

	"github.com/tlskit/tlskit/validation"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP client. It is read once during New and never
// mutated afterwards.
type Config struct {
	// ServerURL is the base URL of the remote server. A trailing slash is
	// stripped during assembly, so "https://host/" and "https://host" are
	// equivalent.
	ServerURL string `yaml:"server_url" mapstructure:"server_url" validate:"omitempty,url"`

	// AcceptInvalidCerts disables server certificate verification.
	// Intended for tests and self-signed deployments only.
	AcceptInvalidCerts bool `yaml:"accept_invalid_certs" mapstructure:"accept_invalid_certs"`

	// VerifiedCert is a PEM-encoded certificate that the server's leaf
	// certificate must match byte for byte. Used when the server runs
	// inside a trusted execution environment and its attested identity is
	// a single known certificate. Pinning takes precedence over
	// AcceptInvalidCerts; the flag only selects whether the chain check
	// behind the pin is skipped.
	VerifiedCert string `yaml:"verified_cert" mapstructure:"verified_cert"`

	// CipherSuites is a colon-separated list of cipher suite names, in
	// negotiation preference order. Empty means library defaults. A list
	// that resolves to no known suite falls back to defaults with an
	// error log rather than failing the build.
	CipherSuites string `yaml:"cipher_suites" mapstructure:"cipher_suites"`

	// SSLClientPKCS12Path is the path to a PKCS#12 client identity bundle.
	// Mutually exclusive with the PEM pair below.
	SSLClientPKCS12Path string `yaml:"ssl_client_pkcs12_path" mapstructure:"ssl_client_pkcs12_path"`
	// SSLClientPKCS12Password decodes the PKCS#12 bundle. Setting it
	// without a path is a configuration error; an empty password with a
	// path is allowed.
	SSLClientPKCS12Password string `yaml:"ssl_client_pkcs12_password" mapstructure:"ssl_client_pkcs12_password"`

	// SSLClientPEMCertPath / SSLClientPEMKeyPath are paths to a client
	// certificate and key in PEM format. Both must be set together.
	SSLClientPEMCertPath string `yaml:"ssl_client_pem_cert_path" mapstructure:"ssl_client_pem_cert_path"`
	SSLClientPEMKeyPath  string `yaml:"ssl_client_pem_key_path" mapstructure:"ssl_client_pem_key_path"`

	// AccessToken is sent as a bearer token on every request unless a
	// request overrides authentication.
	AccessToken string `yaml:"access_token" mapstructure:"access_token"`

	// Proxy configures an outbound proxy. Nil disables proxying.
	Proxy *ProxyConfig `yaml:"proxy" mapstructure:"proxy"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is consistent. Identity-source
// exclusivity is checked here, before any file I/O happens.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return newError(ErrCodeValidation, "invalid configuration", err)
	}
	if err := c.validateIdentitySources(); err != nil {
		return err
	}
	if c.Proxy != nil {
		if err := c.Proxy.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateIdentitySources enforces that at most one client-auth source is
// configured, and that no source is half-specified.
func (c *Config) validateIdentitySources() error {
	pemSet := c.SSLClientPEMCertPath != "" || c.SSLClientPEMKeyPath != ""
	pkcs12Set := c.SSLClientPKCS12Path != "" || c.SSLClientPKCS12Password != ""

	if pemSet && pkcs12Set {
		return newError(ErrCodeConflictingIdentity,
			"cannot use both PKCS#12 and PEM client authentication", nil)
	}
	if (c.SSLClientPEMCertPath != "") != (c.SSLClientPEMKeyPath != "") {
		return newError(ErrCodeConflictingIdentity,
			"both PEM certificate and key paths must be provided", nil)
	}
	if c.SSLClientPKCS12Password != "" && c.SSLClientPKCS12Path == "" {
		return newError(ErrCodeConflictingIdentity,
			"PKCS#12 password provided without a bundle path", nil)
	}
	return nil
}
