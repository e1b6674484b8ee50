package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
)

const (
	AuthCookieName  = "pb_auth"
	GuestCookieName = "laststand_guest"

	// PlayerIDPrefix namespaces human player ids in the match snapshot
	PlayerIDPrefix = "player-"
)

// Identity is who a request plays as
type Identity struct {
	ID    string
	Name  string
	Guest bool
}

// AddCookieSessionMiddleware Sets and Reads session data into a secure cookie
func AddCookieSessionMiddleware(app core.App) {
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(loadAuthContextFromCookie(app))
		return se.Next()
	})

	// fires for every auth collection
	app.OnRecordAuthRequest().
		BindFunc(func(e *core.RecordAuthRequestEvent) error {

			if e.Record.IsSuperuser() {
				return e.Next()
			}

			e.SetCookie(&http.Cookie{
				Name:     AuthCookieName,
				Value:    e.Token,
				Path:     "/",
				Secure:   true,
				HttpOnly: true,
			})
			return e.Next()
		})
}

func loadAuthContextFromCookie(
	app core.App,
) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tokenCookie, err := e.Request.Cookie(AuthCookieName)
		if err != nil || tokenCookie.Value == "" {
			return e.Next() // no token cookie
		}

		record, err := app.FindAuthRecordByToken(tokenCookie.Value, core.TokenTypeAuth)
		if err == nil && record != nil {
			e.Auth = record
		}

		return e.Next()
	}
}

// AuthGuard lets through signed-in users and guests that already joined
func AuthGuard(e *core.RequestEvent) error {
	if e.Auth == nil && guestID(e.Request) == "" {
		return e.Redirect(http.StatusFound, "/login")
	}

	return e.Next()
}

// JoinAsGuest issues a guest id cookie unless the request already has one
func JoinAsGuest(e *core.RequestEvent) string {
	if id := guestID(e.Request); id != "" {
		return id
	}
	id := uuid.NewString()
	e.SetCookie(&http.Cookie{
		Name:     GuestCookieName,
		Value:    id,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// PlayerIdentity resolves the player behind a request. It reports false for
// anonymous requests.
func PlayerIdentity(e *core.RequestEvent) (Identity, bool) {
	return ResolveIdentity(e.Auth, guestID(e.Request))
}

// ResolveIdentity prefers the auth record over the guest id. Name is empty
// when the record carries neither a name nor an email.
func ResolveIdentity(record *core.Record, guest string) (Identity, bool) {
	if record != nil {
		name := record.GetString("name")
		if name == "" {
			name = record.Email()
		}
		return Identity{ID: PlayerIDPrefix + record.Id, Name: name}, true
	}
	if guest != "" {
		return Identity{ID: PlayerIDPrefix + guest, Guest: true}, true
	}
	return Identity{}, false
}

func guestID(r *http.Request) string {
	cookie, err := r.Cookie(GuestCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}

func Logout(e *core.RequestEvent) error {
	for _, name := range []string{AuthCookieName, GuestCookieName} {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   true,
			HttpOnly: true,
		})
	}
	return nil
}
