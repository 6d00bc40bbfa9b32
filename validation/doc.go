// Package validation provides struct tag validation backed by the
// go-playground validator.
//
//	type Config struct {
//	    ServerURL string `validate:"omitempty,url"`
//	}
//	err := validation.Struct(cfg)
package validation
