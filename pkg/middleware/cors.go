package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browsers on the listed origins to call the API with any common
// method and any request header. Requests from other origins are answered
// with 403.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// cors.New refuses a config that allows nothing
	if len(allowedOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return false }
	}

	handler := cors.New(config)

	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		// Browsers ignore "*" in Access-Control-Allow-Headers on credentialed
		// requests, so preflights get back exactly the headers they asked for
		if c.Request.Method == http.MethodOptions && allowed[c.GetHeader("Origin")] {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}
