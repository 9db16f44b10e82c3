package session

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Cryptographically strong session IDs
)

// CookieName is the name of the session cookie
const CookieName = "sessionId"

// CookieMaxAge is the client-side cookie expiry in seconds (7 days).
// Sessions are never invalidated server-side.
const CookieMaxAge = 7 * 24 * 60 * 60

// ContextKey is where the request gate stashes the resolved session ID
const ContextKey = "sessionID"

// Current returns the session identifier carried by the request cookie,
// if present and well-formed. It never mints. Absence is a normal case,
// not a failure.
func Current(c *gin.Context) (string, bool) {
	id, err := c.Cookie(CookieName)
	if err != nil || !wellFormed(id) {
		return "", false
	}
	return id, true
}

// ResolveOrMint returns the existing session identifier from the request
// cookie, or mints a new one and sets the response cookie. This is the
// sole place authorized to mint identifiers; it is invoked only on the
// write path. The session is a bearer capability, not an authenticated
// identity: anyone presenting the cookie owns the rows, and a leaked
// token cannot be revoked.
func ResolveOrMint(c *gin.Context) (id string, minted bool) {
	if id, ok := Current(c); ok {
		return id, false // Reuse the presented session
	}
	id = uuid.NewString() // Mint a fresh opaque identifier
	// Instruct the client to carry the new session for 7 days, site-wide
	c.SetCookie(CookieName, id, CookieMaxAge, "/", "", false, true)
	return id, true
}

// wellFormed reports whether the cookie value looks like a minted
// identifier. Malformed values are treated as absent.
func wellFormed(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
