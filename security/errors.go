package security

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLeafCertificateMismatch is returned during the handshake when the
	// server's end-entity certificate differs from the pinned certificate.
	ErrLeafCertificateMismatch = errors.New("security: leaf certificate does not match the pinned certificate")

	// ErrNoPeerCertificates is returned when the server presents no
	// certificates at all.
	ErrNoPeerCertificates = errors.New("security: server presented no certificates")

	// ErrIdentityUnreadable indicates a client identity file that is
	// missing or cannot be read.
	ErrIdentityUnreadable = errors.New("security: client identity file unreadable")

	// ErrIdentityInvalid indicates client identity material that does not
	// parse as a certificate/key bundle.
	ErrIdentityInvalid = errors.New("security: client identity material invalid")
)

// UnknownCipherSuitesError reports a cipher-suite list that resolved to an
// empty set. Names holds every unrecognized token in input order.
type UnknownCipherSuitesError struct {
	Names []string
}

func (e *UnknownCipherSuitesError) Error() string {
	if len(e.Names) == 0 {
		return "security: cipher suite list contains no suite names"
	}
	return fmt.Sprintf("security: no usable cipher suites, unknown names: %s", strings.Join(e.Names, ", "))
}
