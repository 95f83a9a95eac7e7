package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServeStaticFiles configures routes for the public pages and static assets.
// Moderation and claim links redirect browsers to the result pages below.
func (s *Server) ServeStaticFiles() {
	pages := map[string]string{
		"/":                  "index.html",
		"/submit":            "submit.html",
		"/submission-result": "submission-result.html",
		"/claim-result":      "claim-result.html",
		"/owner":             "owner.html",
		"/owner/login":       "owner-login.html",
	}
	for route, file := range pages {
		path := "public/" + file
		s.router.GET(route, func(c *gin.Context) {
			c.File(path)
		})
	}

	s.router.StaticFS("/static", http.Dir("public"))
}
