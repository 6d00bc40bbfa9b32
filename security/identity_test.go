package security

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tlskit/tlskit/security/tlstest"
)

func TestLoadPEMIdentity_Valid(t *testing.T) {
	chain := tlstest.GenerateCertChain(t)
	cert, err := LoadPEMIdentity(chain.CertFile, chain.KeyFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cert.Certificate) == 0 {
		t.Error("expected certificate material")
	}
}

// The loader guarantees a newline between the two files, so a certificate
// file without a trailing newline still produces a parseable bundle.
func TestLoadPEMIdentity_CertWithoutTrailingNewline(t *testing.T) {
	chain := tlstest.GenerateCertChain(t)
	raw, err := os.ReadFile(chain.CertFile)
	if err != nil {
		t.Fatalf("read cert: %v", err)
	}
	trimmed := filepath.Join(t.TempDir(), "cert.pem")
	if err := os.WriteFile(trimmed, []byte(strings.TrimRight(string(raw), "\n")), 0o600); err != nil {
		t.Fatalf("write cert: %v", err)
	}
	if _, err := LoadPEMIdentity(trimmed, chain.KeyFile); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadPEMIdentity_MissingCertFile(t *testing.T) {
	chain := tlstest.GenerateCertChain(t)
	_, err := LoadPEMIdentity(filepath.Join(t.TempDir(), "nope.pem"), chain.KeyFile)
	if !errors.Is(err, ErrIdentityUnreadable) {
		t.Errorf("expected ErrIdentityUnreadable, got %v", err)
	}
}

func TestLoadPEMIdentity_MissingKeyFile(t *testing.T) {
	chain := tlstest.GenerateCertChain(t)
	_, err := LoadPEMIdentity(chain.CertFile, filepath.Join(t.TempDir(), "nope.pem"))
	if !errors.Is(err, ErrIdentityUnreadable) {
		t.Errorf("expected ErrIdentityUnreadable, got %v", err)
	}
}

func TestLoadPEMIdentity_InvalidMaterial(t *testing.T) {
	chain := tlstest.GenerateCertChain(t)
	badCert := tlstest.WriteInvalidPEM(t, "bad.pem")
	_, err := LoadPEMIdentity(badCert, chain.KeyFile)
	if !errors.Is(err, ErrIdentityInvalid) {
		t.Errorf("expected ErrIdentityInvalid, got %v", err)
	}
}

func TestLoadPKCS12Identity_MissingFile(t *testing.T) {
	_, err := LoadPKCS12Identity(filepath.Join(t.TempDir(), "nope.p12"), "")
	if !errors.Is(err, ErrIdentityUnreadable) {
		t.Errorf("expected ErrIdentityUnreadable, got %v", err)
	}
}

func TestLoadPKCS12Identity_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.p12")
	if err := os.WriteFile(path, []byte("not a pkcs12 bundle"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := LoadPKCS12Identity(path, "secret")
	if !errors.Is(err, ErrIdentityInvalid) {
		t.Errorf("expected ErrIdentityInvalid, got %v", err)
	}
}
