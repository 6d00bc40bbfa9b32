package security

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// VerifierKind identifies the active trust decision variant.
type VerifierKind int

const (
	// VerifierStandard verifies the chain against a root-of-trust store.
	VerifierStandard VerifierKind = iota
	// VerifierAcceptAll accepts every certificate. Explicit opt-in only;
	// it is never the silent default.
	VerifierAcceptAll
	// VerifierLeafPinned requires the end-entity certificate to match a
	// pinned certificate byte for byte, then runs a delegate verifier.
	VerifierLeafPinned
)

// String returns the verifier kind name.
func (k VerifierKind) String() string {
	switch k {
	case VerifierStandard:
		return "standard"
	case VerifierAcceptAll:
		return "accept_all"
	case VerifierLeafPinned:
		return "leaf_pinned"
	default:
		return "unknown"
	}
}

// TrustVerifier decides whether a server certificate chain is trusted.
// Exactly one Kind is active per client build. The LeafPinned variant
// wraps a delegate rather than replacing it: chain verification still
// runs after the pin matches, so possession of the pinned bytes alone is
// not enough when the delegate is Standard.
//
// A TrustVerifier is immutable after construction and safe for concurrent
// use across handshakes.
type TrustVerifier struct {
	// Kind selects the active variant.
	Kind VerifierKind
	// PinnedLeaf is the DER-encoded certificate the end entity must equal
	// (LeafPinned only).
	PinnedLeaf []byte
	// Delegate runs after the pin matches (LeafPinned only).
	Delegate *TrustVerifier
	// Roots overrides the system root pool (Standard only). Nil means the
	// system store.
	Roots *x509.CertPool
}

// SelectVerifier picks the verifier for a client build.
//
// Pinning wins over the accept-invalid flag: "trust exactly this
// certificate" is the narrower statement and must not be weakened by a
// blanket insecure flag. The flag still chooses the delegate that runs
// after the pin matches, since a pinned enclave certificate often has no
// CA-issued chain behind it.
func SelectVerifier(pinnedLeaf []byte, acceptInvalidCerts bool) *TrustVerifier {
	if len(pinnedLeaf) > 0 {
		delegate := &TrustVerifier{Kind: VerifierStandard}
		if acceptInvalidCerts {
			delegate = &TrustVerifier{Kind: VerifierAcceptAll}
		}
		return &TrustVerifier{
			Kind:       VerifierLeafPinned,
			PinnedLeaf: pinnedLeaf,
			Delegate:   delegate,
		}
	}
	if acceptInvalidCerts {
		return &TrustVerifier{Kind: VerifierAcceptAll}
	}
	return &TrustVerifier{Kind: VerifierStandard}
}

// VerifyRawChain checks the DER-encoded certificates presented during a
// handshake. rawCerts[0] is the end-entity certificate.
func (v *TrustVerifier) VerifyRawChain(rawCerts [][]byte, serverName string) error {
	switch v.Kind {
	case VerifierAcceptAll:
		return nil
	case VerifierLeafPinned:
		if len(rawCerts) == 0 {
			return ErrNoPeerCertificates
		}
		// The pin is compared before any chain or signature work so a
		// wrong certificate fails fast without exposing validation detail.
		if !bytes.Equal(rawCerts[0], v.PinnedLeaf) {
			return ErrLeafCertificateMismatch
		}
		return v.Delegate.VerifyRawChain(rawCerts, serverName)
	default:
		return v.verifyStandard(rawCerts, serverName)
	}
}

// verifyStandard builds and verifies the chain against the root pool.
func (v *TrustVerifier) verifyStandard(rawCerts [][]byte, serverName string) error {
	if len(rawCerts) == 0 {
		return ErrNoPeerCertificates
	}
	certs := make([]*x509.Certificate, 0, len(rawCerts))
	for _, raw := range rawCerts {
		cert, err := x509.ParseCertificate(raw)
		if err != nil {
			return fmt.Errorf("security: parse peer certificate: %w", err)
		}
		certs = append(certs, cert)
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	opts := x509.VerifyOptions{
		Roots:         v.Roots,
		Intermediates: intermediates,
		DNSName:       serverName,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	_, err := certs[0].Verify(opts)
	return err
}

// Apply wires the verifier into a TLS client configuration.
//
// The plain Standard variant keeps crypto/tls built-in verification and
// only sets the root pool. The other variants replace it: crypto/tls
// exposes custom trust decisions solely through VerifyPeerCertificate
// with the built-in check disabled, so hostname and chain validation move
// into VerifyRawChain.
func (v *TrustVerifier) Apply(cfg *tls.Config, serverName string) {
	if v.Kind == VerifierStandard {
		cfg.RootCAs = v.Roots
		return
	}
	cfg.InsecureSkipVerify = true
	cfg.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		return v.VerifyRawChain(rawCerts, serverName)
	}
}

// ParsePinnedCertificate decodes a PEM-encoded certificate into the DER
// bytes used for leaf pinning. The bytes are validated as X.509 so a
// malformed pin fails at build time, not at the first handshake.
func ParsePinnedCertificate(pemData []byte) ([]byte, error) {
	block, _ := pem.Decode(pemData)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("security: pinned certificate is not a PEM CERTIFICATE block")
	}
	if _, err := x509.ParseCertificate(block.Bytes); err != nil {
		return nil, fmt.Errorf("security: pinned certificate is not valid X.509: %w", err)
	}
	return block.Bytes, nil
}
