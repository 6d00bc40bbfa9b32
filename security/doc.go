// Package security implements the TLS trust decisions shared across the
// kit: cipher-suite name resolution, server certificate verification
// (standard chain, accept-all, and leaf-pinned variants), and client
// identity loading for mutual TLS.
//
// The package decides WHICH verifier and cipher set a connection uses;
// the cryptographic work itself is done by crypto/tls and crypto/x509.
//
// Leaf pinning is designed for servers running inside a trusted execution
// environment: the attested identity of the enclave is represented by a
// single known certificate, and the client refuses any handshake whose
// end-entity certificate differs from it byte for byte.
package security
