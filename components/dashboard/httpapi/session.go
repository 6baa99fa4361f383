package httpapi

import (
	"crypto/rand"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
)

const (
	// DefaultSessionName is the cookie holding the viewer's session id.
	DefaultSessionName = "dealerdash"
	sessionIDKey       = "id"
)

// SessionResolver maps a request to the dashboard session it belongs to.
type SessionResolver interface {
	Resolve(w http.ResponseWriter, r *http.Request) (dashboard.SessionContext, error)
}

// CookieSessions keeps a random session id in a gorilla/sessions store. The
// active section itself lives in the dashboard SessionStore.
type CookieSessions struct {
	Store sessions.Store
	Name  string
}

// NewCookieSessions builds a resolver backed by a signed cookie store. An
// empty secret gets a random per-process key, so cookies do not survive a
// restart.
func NewCookieSessions(secret []byte) *CookieSessions {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &CookieSessions{Store: store, Name: DefaultSessionName}
}

// Resolve loads or issues the session id. New ids are written to the
// response, so callers must resolve before writing a body.
func (c *CookieSessions) Resolve(w http.ResponseWriter, r *http.Request) (dashboard.SessionContext, error) {
	name := c.Name
	if name == "" {
		name = DefaultSessionName
	}
	session, err := c.Store.Get(r, name)
	if err != nil && session == nil {
		return dashboard.SessionContext{}, err
	}
	id, _ := session.Values[sessionIDKey].(string)
	if id == "" {
		id = uuid.NewString()
		session.Values[sessionIDKey] = id
		if err := session.Save(r, w); err != nil {
			return dashboard.SessionContext{}, err
		}
	}
	return dashboard.SessionContext{
		ID:     id,
		Locale: r.Header.Get("Accept-Language"),
	}, nil
}
