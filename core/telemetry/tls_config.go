package telemetry

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
)

// getTLSConfig builds a client TLS configuration from a base64-encoded
// PEM bundle of collector CA certificates.
func getTLSConfig(caCertsBase64 string) (*tls.Config, error) {
	pem, err := base64.StdEncoding.DecodeString(caCertsBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TLS configuration: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("failed to add CA certificates to CA cert pool")
	}

	return &tls.Config{RootCAs: pool}, nil
}
