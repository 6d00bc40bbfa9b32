package security

import "crypto/tls"

// TLSParams collects the resolved inputs for one TLS client configuration.
// All fields are produced once during client assembly; none are mutated
// afterwards.
type TLSParams struct {
	// Verifier decides server certificate trust. Nil means the plain
	// standard verifier.
	Verifier *TrustVerifier
	// CipherSuites restricts the negotiable TLS 1.2 suite set, in
	// preference order. Nil or empty means library defaults. TLS 1.3
	// suites are not restrictable by crypto/tls and stay enabled.
	CipherSuites []uint16
	// Identity is the client certificate presented for mutual TLS.
	Identity *tls.Certificate
	// ServerName is the hostname used for certificate verification.
	ServerName string
}

// BuildTLSConfig assembles a *tls.Config from resolved parameters. The
// returned config is ready to attach to a transport and is safe to share
// read-only across connections.
func BuildTLSConfig(p TLSParams) *tls.Config {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	if len(p.CipherSuites) > 0 {
		cfg.CipherSuites = p.CipherSuites
	}
	verifier := p.Verifier
	if verifier == nil {
		verifier = &TrustVerifier{Kind: VerifierStandard}
	}
	verifier.Apply(cfg, p.ServerName)
	if p.Identity != nil {
		cfg.Certificates = []tls.Certificate{*p.Identity}
	}
	return cfg
}
