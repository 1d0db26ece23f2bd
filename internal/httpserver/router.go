package httpserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zouqly-storefront/internal/session"
)

const sessionCtxKey = "storefront.session"

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(deps.CORSOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	router.POST("/sessions", createSessionHandler(deps.Sessions))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))
	router.GET("/categories", listCategoriesHandler(deps.Catalog))

	authed := router.Group("/", sessionMiddleware(deps.Sessions))
	authed.GET("/cart", getCartHandler())
	authed.POST("/cart/items", addCartItemHandler(deps.Catalog))
	authed.PATCH("/cart/items/:id", updateCartItemHandler())
	authed.DELETE("/cart/items/:id", removeCartItemHandler())
	authed.DELETE("/cart", clearCartHandler())
	authed.GET("/checkout", checkoutStatusHandler(deps.Checkout))
	authed.POST("/checkout", submitCheckoutHandler(deps.Checkout))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// sessionMiddleware resolves the bearer token into a live session and
// stashes it on the request context.
func sessionMiddleware(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		sess, err := registry.Lookup(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or unknown"})
			return
		}
		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionCtxKey).(*session.Session)
}

func createSessionHandler(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := registry.Issue()
		c.JSON(http.StatusCreated, gin.H{
			"token":     token,
			"expiresIn": registry.TTLSeconds(),
		})
	}
}
