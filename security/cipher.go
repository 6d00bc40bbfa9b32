package security

import (
	"crypto/tls"
	"fmt"
	"strings"
)

// cipherSuiteNames maps supported cipher suite names to their crypto/tls
// IDs. The set covers the TLS 1.3 suites and the TLS 1.2 ECDHE AEAD
// suites; CBC and non-ECDHE suites are deliberately absent.
var cipherSuiteNames = map[string]uint16{
	// TLS 1.3
	"TLS_AES_128_GCM_SHA256":       tls.TLS_AES_128_GCM_SHA256,
	"TLS_AES_256_GCM_SHA384":       tls.TLS_AES_256_GCM_SHA384,
	"TLS_CHACHA20_POLY1305_SHA256": tls.TLS_CHACHA20_POLY1305_SHA256,
	// TLS 1.2 ECDHE-ECDSA
	"TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256":       tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384":       tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256": tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
	// TLS 1.2 ECDHE-RSA
	"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256":       tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	"TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384":       tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	"TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256": tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
}

// ResolveCipherSuites parses a colon-separated, case-insensitive list of
// cipher suite names into crypto/tls suite IDs, preserving input order.
//
// Only ':' separates names; a comma-containing token is treated as one
// (unrecognized) name. Unrecognized names are returned as warnings when at
// least one name resolved; a list that resolves to nothing returns an
// *UnknownCipherSuitesError naming every unrecognized token. An all-empty
// list (e.g. ":::") also fails rather than silently meaning "defaults".
func ResolveCipherSuites(list string) ([]uint16, []string, error) {
	var (
		resolved []uint16
		unknown  []string
	)
	for _, name := range strings.Split(list, ":") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := cipherSuiteNames[strings.ToUpper(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		resolved = append(resolved, id)
	}
	if len(resolved) == 0 {
		return nil, nil, &UnknownCipherSuitesError{Names: unknown}
	}
	return resolved, unknown, nil
}

// CipherSuiteName returns the standard name for a suite ID, or the hex
// form for IDs outside the supported set.
func CipherSuiteName(id uint16) string {
	for name, candidate := range cipherSuiteNames {
		if candidate == id {
			return name
		}
	}
	return fmt.Sprintf("0x%04x", id)
}
