package security

import (
	"crypto/tls"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// LoadPEMIdentity loads a client certificate and private key from two PEM
// files. The files are combined into a single bundle with a guaranteed
// newline between them before parsing.
//
// Errors wrap ErrIdentityUnreadable when a file cannot be read and
// ErrIdentityInvalid when the combined bytes do not parse. No partial
// state is left behind on failure.
func LoadPEMIdentity(certPath, keyPath string) (tls.Certificate, error) {
	certBytes, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %s: %v", ErrIdentityUnreadable, certPath, err)
	}
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %s: %v", ErrIdentityUnreadable, keyPath, err)
	}

	bundle := make([]byte, 0, len(certBytes)+1+len(keyBytes))
	bundle = append(bundle, certBytes...)
	if len(bundle) == 0 || bundle[len(bundle)-1] != '\n' {
		bundle = append(bundle, '\n')
	}
	bundle = append(bundle, keyBytes...)

	// X509KeyPair scans its first argument for certificate blocks and its
	// second for the key block, skipping blocks of the other type, so the
	// combined bundle serves as both.
	cert, err := tls.X509KeyPair(bundle, bundle)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %v", ErrIdentityInvalid, err)
	}
	return cert, nil
}

// LoadPKCS12Identity loads a client identity from a PKCS#12 bundle,
// decoding it with the supplied password (which may be empty).
//
// Error classification matches LoadPEMIdentity.
func LoadPKCS12Identity(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %s: %v", ErrIdentityUnreadable, path, err)
	}
	key, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %v", ErrIdentityInvalid, err)
	}
	return tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  key,
		Leaf:        cert,
	}, nil
}
