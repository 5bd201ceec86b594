package transport

import (
	"fmt"
	"strings"
)

// CredentialSource selects where the HTTP transport reads the API key from.
type CredentialSource string

const (
	// SourceEnv shares the process-wide key (environment, flag or config file).
	SourceEnv CredentialSource = "env"
	// SourceHeader reads the key from a request header of GET /sse.
	SourceHeader CredentialSource = "header"
	// SourceQuery reads the key from a query parameter of GET /sse.
	SourceQuery CredentialSource = "query"
)

// ParseCredentialSource parses s case-insensitively. "" selects SourceEnv.
func ParseCredentialSource(s string) (CredentialSource, error) {
	switch CredentialSource(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceEnv:
		return SourceEnv, nil
	case SourceHeader:
		return SourceHeader, nil
	case SourceQuery:
		return SourceQuery, nil
	default:
		return "", fmt.Errorf("unknown credential source %q (want env, header or query)", s)
	}
}

// HTTPConfig holds HTTP transport settings.
type HTTPConfig struct {
	Host             string           `yaml:"host"`
	Port             int              `yaml:"port"`
	CredentialSource CredentialSource `yaml:"credentialSource"`
	CredentialHeader string           `yaml:"credentialHeader"`
	CredentialQuery  string           `yaml:"credentialQuery"`
	AllowedOrigin    string           `yaml:"allowedOrigin"`
}

func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Port:             3000,
		CredentialSource: SourceEnv,
		CredentialHeader: "haloscan-api-key",
		CredentialQuery:  "apiKey",
		AllowedOrigin:    "*",
	}
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
