package httpclient

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tlskit/tlskit/security"
)

func TestErrorStringIncludesCodeAndCause(t *testing.T) {
	err := newError(ErrCodeProxyInvalid, "malformed proxy URL", errors.New("boom"))
	msg := err.Error()
	if !strings.Contains(msg, "proxy_invalid") {
		t.Errorf("message missing code: %s", msg)
	}
	if !strings.Contains(msg, "boom") {
		t.Errorf("message missing cause: %s", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := newError(ErrCodeValidation, "invalid", cause)
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestClassifyIdentityError(t *testing.T) {
	unreadable := fmt.Errorf("reading cert: %w", security.ErrIdentityUnreadable)
	if err := classifyIdentityError(unreadable); err.Code != ErrCodeIdentityUnreadable {
		t.Errorf("code = %v, want unreadable", err.Code)
	}

	invalid := fmt.Errorf("parsing cert: %w", security.ErrIdentityInvalid)
	if err := classifyIdentityError(invalid); err.Code != ErrCodeIdentityInvalid {
		t.Errorf("code = %v, want invalid", err.Code)
	}
}

func TestIsHelpersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("assembling client: %w",
		newError(ErrCodeConflictingIdentity, "both sources", nil))
	if !IsConflictingIdentity(wrapped) {
		t.Error("IsConflictingIdentity should see through wrapping")
	}
	if IsProxyInvalid(wrapped) {
		t.Error("IsProxyInvalid must not match a conflicting-identity error")
	}
}

func TestErrorCodeString(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrCodeConflictingIdentity: "conflicting_identity",
		ErrCodeIdentityUnreadable:  "identity_unreadable",
		ErrCodeIdentityInvalid:     "identity_invalid",
		ErrCodeUnknownCipherSuites: "unknown_cipher_suites",
		ErrCodePinnedCertInvalid:   "pinned_cert_invalid",
		ErrCodeProxyInvalid:        "proxy_invalid",
		ErrCodeValidation:          "validation",
	}
	for code, want := range codes {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
}
