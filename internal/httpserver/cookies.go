package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const cartCookieName = "cartId"

// cookieIDStore binds the cart id store to the cartId cookie of a single
// request. Reads see the inbound cookie; Set writes the Set-Cookie header
// on the response.
type cookieIDStore struct {
	c   *gin.Context
	ttl time.Duration
}

func newCookieIDStore(c *gin.Context, ttl time.Duration) *cookieIDStore {
	return &cookieIDStore{c: c, ttl: ttl}
}

func (s *cookieIDStore) Get() string {
	v, err := s.c.Cookie(cartCookieName)
	if err != nil {
		return ""
	}
	return v
}

func (s *cookieIDStore) Set(id string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(cartCookieName, id, int(s.ttl.Seconds()), "/", "", false, true)
}
