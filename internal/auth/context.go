package auth

// SessionContext carries the caller's identity into operations that require
// authorization. The zero value is anonymous.
type SessionContext struct {
	UserID uint
	Token  string
}

// Anonymous is the unauthenticated session context.
var Anonymous = SessionContext{}

func (s SessionContext) Authenticated() bool {
	return s.UserID != 0
}
