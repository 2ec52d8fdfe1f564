package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/booklibrary/api/responses"
	pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/session"
)

// sessionHeader carries the session token for clients that do not keep cookies.
const sessionHeader = "X-Session-Token"

type sessionIssuer interface {
	Mint() (token string, sessionID string, err error)
	Parse(token string) (*session.Claims, error)
	TTL() time.Duration
}

// SessionOptions configure the session cookie.
type SessionOptions struct {
	CookieName string
	Secure     bool
}

// Session resolves the caller's session id from a signed token and stores it
// in the request context. A missing, invalid or expired token gets a fresh
// session, returned as a cookie and in the X-Session-Token header.
func Session(issuer sessionIssuer, opts SessionOptions, logg *logger.Logger) func(http.Handler) http.Handler {
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = "booklib_session"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID := ""
			if token := sessionToken(r, cookieName); token != "" {
				claims, err := issuer.Parse(token)
				if err == nil {
					sessionID = claims.SessionID()
				} else if logg != nil {
					logg.Debug(logg.WithField(ctx, "reason", err.Error()), "session token rejected")
				}
			}

			if sessionID == "" {
				token, id, err := issuer.Mint()
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue session"))
					return
				}
				sessionID = id
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(issuer.TTL().Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
				w.Header().Set(sessionHeader, token)
				if logg != nil {
					logg.Info(logg.WithSessionID(ctx, id), "session issued")
				}
			}

			ctx = WithSessionID(ctx, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if v := strings.TrimSpace(cookie.Value); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Header.Get(sessionHeader))
}
