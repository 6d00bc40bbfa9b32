package httpclient

import (
	"errors"
	"testing"
	"time"
)

func TestApplyDefaultsTimeout(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}

	cfg = Config{Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("explicit Timeout overwritten: %v", cfg.Timeout)
	}
}

func TestValidateRejectsBothIdentitySources(t *testing.T) {
	// Paths deliberately do not exist: exclusivity must fail before any
	// file is opened.
	cfg := Config{
		SSLClientPKCS12Path:  "/nonexistent/identity.p12",
		SSLClientPEMCertPath: "/nonexistent/cert.pem",
		SSLClientPEMKeyPath:  "/nonexistent/key.pem",
	}
	err := cfg.Validate()
	if !IsConflictingIdentity(err) {
		t.Fatalf("expected conflicting identity error, got %v", err)
	}
}

func TestValidateRejectsHalfPEMPair(t *testing.T) {
	cfg := Config{SSLClientPEMCertPath: "/nonexistent/cert.pem"}
	if err := cfg.Validate(); !IsConflictingIdentity(err) {
		t.Fatalf("cert without key should be rejected, got %v", err)
	}

	cfg = Config{SSLClientPEMKeyPath: "/nonexistent/key.pem"}
	if err := cfg.Validate(); !IsConflictingIdentity(err) {
		t.Fatalf("key without cert should be rejected, got %v", err)
	}
}

func TestValidateRejectsPasswordWithoutPath(t *testing.T) {
	cfg := Config{SSLClientPKCS12Password: "secret"}
	if err := cfg.Validate(); !IsConflictingIdentity(err) {
		t.Fatalf("password without bundle path should be rejected, got %v", err)
	}
}

func TestValidateAllowsPathWithEmptyPassword(t *testing.T) {
	cfg := Config{SSLClientPKCS12Path: "/nonexistent/identity.p12"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("bundle path with empty password should validate, got %v", err)
	}
}

func TestValidateRejectsMalformedServerURL(t *testing.T) {
	cfg := Config{ServerURL: "not a url"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Code != ErrCodeValidation {
		t.Errorf("expected validation error code, got %v", err)
	}
}
