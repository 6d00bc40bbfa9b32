package validation

import (
	"strings"
	"testing"
)

type sample struct {
	ServerURL string `validate:"omitempty,url"`
	Name      string `validate:"required"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(sample{ServerURL: "https://example.com", Name: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructOmitemptySkipsEmpty(t *testing.T) {
	if err := Struct(sample{Name: "x"}); err != nil {
		t.Fatalf("empty optional URL should pass: %v", err)
	}
}

func TestStructInvalidURL(t *testing.T) {
	err := Struct(sample{ServerURL: "not a url", Name: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "server_url") {
		t.Errorf("error should name the field in snake_case: %v", err)
	}
}

func TestStructRequired(t *testing.T) {
	err := Struct(sample{})
	if err == nil {
		t.Fatal("expected error")
	}
	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	found := false
	for _, f := range verr.Fields {
		if f.Field == "name" && f.Message == "is required" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing required-field error: %+v", verr.Fields)
	}
}
