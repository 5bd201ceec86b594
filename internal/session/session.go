package session

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/occirank/Haloscan-mcp-server/internal/credential"
)

// Session is one open SSE push channel and the credential scope bound to it.
type Session struct {
	ID          string
	Transport   *mcp.SSEServerTransport
	Credentials *credential.Holder
	RemoteAddr  string
	CreatedAt   time.Time
}

// New constructs a Session for transport with a fresh id.
func New(id string, transport *mcp.SSEServerTransport, creds *credential.Holder, remoteAddr string) *Session {
	return &Session{
		ID:          id,
		Transport:   transport,
		Credentials: creds,
		RemoteAddr:  remoteAddr,
		CreatedAt:   time.Now(),
	}
}
