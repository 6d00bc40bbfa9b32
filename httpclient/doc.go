// Package httpclient assembles HTTP clients for servers whose TLS trust
// requirements go beyond the platform defaults: pinned leaf certificates
// for TEE-hosted servers, restricted cipher-suite sets, mutual TLS via
// PEM or PKCS#12 client identities, and authenticated proxies.
//
// Assembly happens once, synchronously, in New; the returned Client is
// immutable and safe to share across goroutines. Rebuilding (for
// certificate rotation) means calling New again and swapping the handle
// at the call site.
//
//	client, err := httpclient.New(httpclient.Config{
//	    ServerURL:    "https://kms.example.com",
//	    VerifiedCert: enclaveCertPEM,
//	    CipherSuites: "TLS_AES_256_GCM_SHA384:TLS_AES_128_GCM_SHA256",
//	})
//
// Misconfigured cipher-suite lists degrade to library defaults with an
// error log instead of failing the build; identity and proxy problems are
// always fatal. See the package errors for the full taxonomy.
package httpclient
