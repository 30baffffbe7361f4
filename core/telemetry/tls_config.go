package telemetry

import (
	"crypto/tls"

	"github.com/anoideaopen/reflection/core/config"
)

// tlsConfig trusts the CA bundle of settings. It returns nil when no bundle is
// configured.
func tlsConfig(settings *config.Telemetry) (*tls.Config, error) {
	pool, err := settings.CertPool()
	if err != nil || pool == nil {
		return nil, err
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
