package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	XUserEmail = "X-User-Email"

	sessionKey = "session"
)

// sessionMW attaches the caller's session and echoes its id back so a new
// client can keep it. Only state-changing requests keep a new session.
func (h *Handler) sessionMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(session.HeaderSessionID)
		var sess *session.Session
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead:
			sess = h.sessions.Peek(id)
		default:
			sess = h.sessions.Get(id)
		}
		c.Response().Header().Set(session.HeaderSessionID, sess.ID)
		c.Set(sessionKey, sess)
		return next(c)
	}
}

func currentSession(c echo.Context) *session.Session {
	sess, ok := c.Get(sessionKey).(*session.Session)
	if !ok {
		panic("session middleware is not installed")
	}
	return sess
}

// userEmail is the logged-in user as asserted by the auth layer in front of the storefront.
func userEmail(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(XUserEmail))
}

func requireUser(c echo.Context) (string, error) {
	email := userEmail(c)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errs.ErrNoUser.Error())
	}
	return email, nil
}

// upstreamError turns a failed bookstore call into the one-line message shown to users.
func upstreamError(code int, msg string) error {
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}
	return echo.NewHTTPError(code, msg)
}
