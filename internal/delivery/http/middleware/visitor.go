package middleware

import (
	"context"
	"net/http"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookieName identifies an anonymous visitor across requests
	VisitorCookieName = "visitor_id"
	// visitorCookieMaxAge is one year
	visitorCookieMaxAge = 365 * 24 * 3600
)

// Visitor assigns every client a stable anonymous id kept in a cookie
func Visitor(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookieName)
		if _, perr := uuid.Parse(id); err != nil || perr != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookieName, id, visitorCookieMaxAge, "/", "", secure, true)
		}

		c.Set(string(domain.KeyVisitorID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyVisitorID, id))
		c.Next()
	}
}

// GetVisitorID returns the id set by Visitor, or ""
func GetVisitorID(c *gin.Context) string {
	return c.GetString(string(domain.KeyVisitorID))
}
