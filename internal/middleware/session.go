package middleware

import (
	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "cafe_session"

	// SessionContextKey is where the resolved SessionContext lives in the
	// echo context.
	SessionContextKey = "sessionContext"
)

// Session resolves the session cookie into a SessionContext and stores it in
// the echo context. Requests without a valid cookie proceed anonymous;
// authorization is enforced per-operation in the services.
func Session(authSvc service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := auth.Anonymous
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				sess = authSvc.ResolveSession(c.Request().Context(), cookie.Value)
			}
			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the caller's session context, anonymous when the
// middleware did not run.
func SessionFromContext(c echo.Context) auth.SessionContext {
	if sess, ok := c.Get(SessionContextKey).(auth.SessionContext); ok {
		return sess
	}
	return auth.Anonymous
}
