package gorouter

import (
	"strings"

	"github.com/google/uuid"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

// DefaultCookieName is the cookie carrying the viewer's session id.
const DefaultCookieName = "dealerdash"

const sessionLocalsKey = "session_id"

// CookieSessionResolver issues a random session id cookie on first visit and
// reads it back afterwards, so browsers keep their selected section across
// requests. Query, header and locale handling match the default resolver.
func CookieSessionResolver(name string) SessionResolver {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCookieName
	}
	return func(ctx router.Context) dashboard.SessionContext {
		if id, ok := ctx.Locals(sessionLocalsKey).(string); !ok || id == "" {
			id = strings.TrimSpace(ctx.Cookies(name))
			if id == "" {
				id = uuid.NewString()
				ctx.Cookie(&router.Cookie{
					Name:     name,
					Value:    id,
					Path:     "/",
					HTTPOnly: true,
					SameSite: router.CookieSameSiteLaxMode,
				})
			}
			ctx.Locals(sessionLocalsKey, id)
		}
		return defaultSessionResolver(ctx)
	}
}
