package transport

import "testing"

func TestParseCredentialSource(t *testing.T) {
	cases := map[string]CredentialSource{
		"":        SourceEnv,
		"env":     SourceEnv,
		"Header":  SourceHeader,
		" query ": SourceQuery,
	}
	for in, want := range cases {
		got, err := ParseCredentialSource(in)
		if err != nil {
			t.Errorf("ParseCredentialSource(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCredentialSource(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseCredentialSource("cookie"); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestHTTPConfig_Addr(t *testing.T) {
	c := DefaultHTTPConfig()
	if got := c.Addr(); got != ":3000" {
		t.Errorf("Addr() = %q, want :3000", got)
	}
	c.Host = "127.0.0.1"
	c.Port = 8080
	if got := c.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
