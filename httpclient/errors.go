package httpclient

import (
	"errors"
	"fmt"

	"github.com/tlskit/tlskit/security"
)

// ErrorCode classifies client assembly errors.
type ErrorCode int

const (
	// ErrCodeConflictingIdentity indicates both identity sources, or half
	// of one, were configured.
	ErrCodeConflictingIdentity ErrorCode = iota
	// ErrCodeIdentityUnreadable indicates an identity file that is missing
	// or unreadable.
	ErrCodeIdentityUnreadable
	// ErrCodeIdentityInvalid indicates identity material that does not parse.
	ErrCodeIdentityInvalid
	// ErrCodeUnknownCipherSuites indicates a cipher-suite list that
	// resolved to nothing. Surfaced by the resolver; the assembler
	// recovers from it by falling back to default suites.
	ErrCodeUnknownCipherSuites
	// ErrCodePinnedCertInvalid indicates a pinned certificate that is not
	// valid PEM or X.509.
	ErrCodePinnedCertInvalid
	// ErrCodeProxyInvalid indicates a malformed proxy URL or auth header.
	ErrCodeProxyInvalid
	// ErrCodeValidation indicates an invalid configuration value.
	ErrCodeValidation
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConflictingIdentity:
		return "conflicting_identity"
	case ErrCodeIdentityUnreadable:
		return "identity_unreadable"
	case ErrCodeIdentityInvalid:
		return "identity_invalid"
	case ErrCodeUnknownCipherSuites:
		return "unknown_cipher_suites"
	case ErrCodePinnedCertInvalid:
		return "pinned_cert_invalid"
	case ErrCodeProxyInvalid:
		return "proxy_invalid"
	case ErrCodeValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a structured client assembly error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("httpclient: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// classifyIdentityError maps security identity sentinels to client codes.
func classifyIdentityError(err error) *Error {
	code := ErrCodeIdentityInvalid
	if errors.Is(err, security.ErrIdentityUnreadable) {
		code = ErrCodeIdentityUnreadable
	}
	return newError(code, "loading client identity", err)
}

// IsConflictingIdentity checks for a conflicting identity configuration.
func IsConflictingIdentity(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConflictingIdentity
}

// IsIdentityUnreadable checks for an unreadable identity file.
func IsIdentityUnreadable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeIdentityUnreadable
}

// IsIdentityInvalid checks for unparseable identity material.
func IsIdentityInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeIdentityInvalid
}

// IsPinnedCertInvalid checks for an invalid pinned certificate.
func IsPinnedCertInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodePinnedCertInvalid
}

// IsProxyInvalid checks for an invalid proxy configuration.
func IsProxyInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeProxyInvalid
}
