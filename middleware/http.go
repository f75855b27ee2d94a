package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// Wrap adapts a net/http middleware to gin. If the wrapped middleware answers
// the request itself (preflight, rate limit) the gin chain is aborted.
func Wrap(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		passed := false
		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}
}

// SecureHeaders sets the usual hardening headers; production also redirects to https.
func SecureHeaders(production bool, logger *zap.Logger) gin.HandlerFunc {
	sm := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})
	return func(c *gin.Context) {
		if err := sm.Process(c.Writer, c.Request); err != nil {
			logger.Warn("secure headers blocked request", zap.Error(err))
			c.Abort()
			return
		}
		// redirect already written
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}

// CORS allows browser frontends to call the API with a bearer token
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return Wrap(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
}

// RateLimitByIP throttles a route group to perMinute requests per client IP.
func RateLimitByIP(perMinute int) gin.HandlerFunc {
	return Wrap(httprate.Limit(perMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
}
