package security

import (
	"crypto/tls"
	"errors"
	"testing"
)

func TestResolveCipherSuites_SingleName(t *testing.T) {
	suites, warnings, err := ResolveCipherSuites("TLS_AES_256_GCM_SHA384")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(suites) != 1 || suites[0] != tls.TLS_AES_256_GCM_SHA384 {
		t.Errorf("unexpected suites: %v", suites)
	}
}

func TestResolveCipherSuites_PreservesInputOrder(t *testing.T) {
	suites, _, err := ResolveCipherSuites("TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:TLS_AES_256_GCM_SHA384")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, tls.TLS_AES_256_GCM_SHA384}
	if len(suites) != 2 || suites[0] != want[0] || suites[1] != want[1] {
		t.Errorf("order not preserved: got %v, want %v", suites, want)
	}
}

func TestResolveCipherSuites_CaseInsensitive(t *testing.T) {
	suites, _, err := ResolveCipherSuites("tls_aes_128_gcm_sha256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suites) != 1 || suites[0] != tls.TLS_AES_128_GCM_SHA256 {
		t.Errorf("unexpected suites: %v", suites)
	}
}

func TestResolveCipherSuites_TrimsWhitespaceAndSkipsEmptySegments(t *testing.T) {
	suites, _, err := ResolveCipherSuites("  TLS_AES_128_GCM_SHA256 : : TLS_AES_256_GCM_SHA384  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suites) != 2 {
		t.Errorf("expected 2 suites, got %v", suites)
	}
}

func TestResolveCipherSuites_AllUnknownFailsListingNames(t *testing.T) {
	_, _, err := ResolveCipherSuites("UNKNOWN_SUITE_A:UNKNOWN_SUITE_B")
	var unknownErr *UnknownCipherSuitesError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownCipherSuitesError, got %v", err)
	}
	if len(unknownErr.Names) != 2 || unknownErr.Names[0] != "UNKNOWN_SUITE_A" || unknownErr.Names[1] != "UNKNOWN_SUITE_B" {
		t.Errorf("expected both unknown names, got %v", unknownErr.Names)
	}
}

func TestResolveCipherSuites_PartialSucceedsWithWarning(t *testing.T) {
	suites, warnings, err := ResolveCipherSuites("TLS_AES_256_GCM_SHA384:BOGUS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suites) != 1 || suites[0] != tls.TLS_AES_256_GCM_SHA384 {
		t.Errorf("unexpected suites: %v", suites)
	}
	if len(warnings) != 1 || warnings[0] != "BOGUS" {
		t.Errorf("expected warning naming BOGUS, got %v", warnings)
	}
}

func TestResolveCipherSuites_EmptyInputFails(t *testing.T) {
	_, _, err := ResolveCipherSuites("")
	var unknownErr *UnknownCipherSuitesError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownCipherSuitesError, got %v", err)
	}
}

func TestResolveCipherSuites_OnlySeparatorsFails(t *testing.T) {
	if _, _, err := ResolveCipherSuites(" : : "); err == nil {
		t.Fatal("expected error for separator-only input")
	}
}

// Commas are not separators: a comma-joined pair is a single unrecognized
// token, not two names.
func TestResolveCipherSuites_CommaIsNotASeparator(t *testing.T) {
	_, _, err := ResolveCipherSuites("TLS_AES_256_GCM_SHA384,TLS_AES_128_GCM_SHA256")
	var unknownErr *UnknownCipherSuitesError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownCipherSuitesError, got %v", err)
	}
	if len(unknownErr.Names) != 1 {
		t.Errorf("expected one unknown token, got %v", unknownErr.Names)
	}
}

func TestCipherSuiteName(t *testing.T) {
	if got := CipherSuiteName(tls.TLS_AES_128_GCM_SHA256); got != "TLS_AES_128_GCM_SHA256" {
		t.Errorf("unexpected name: %s", got)
	}
	if got := CipherSuiteName(0xffff); got != "0xffff" {
		t.Errorf("expected hex form for unknown ID, got %s", got)
	}
}
