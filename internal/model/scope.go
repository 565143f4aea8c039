package model

// DefaultSessionID is used when a transport does not supply a session.
const DefaultSessionID = "default"

// Scope carries the caller identity through a single resolution.
type Scope struct {
	SessionID string // e.g. "telegram_123456" or a web session UUID
	Username  string // optional display name from the transport
}

// Session returns the session identifier, falling back to DefaultSessionID.
func (s Scope) Session() string {
	if s.SessionID == "" {
		return DefaultSessionID
	}
	return s.SessionID
}
