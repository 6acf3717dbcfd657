package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busbook/internal/config"
	h "busbook/internal/http/handlers"
	"busbook/internal/http/middleware"
	"busbook/internal/upstream"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, api *upstream.Client) *gin.Engine {
	h.Configure(env, api)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Session())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/db-check", h.DBCheck)
		apiGroup.GET("/routes", h.Routes)

		// Auth
		auth := apiGroup.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)

		// Buses (list is public, details need a session)
		buses := apiGroup.Group("/buses")
		buses.GET("", h.ListBuses)
		buses.GET("/:id", middleware.RequireAuth(), h.GetBus)
		buses.GET("/:id/stops", middleware.RequireAuth(), h.GetBusStops)
		buses.POST("/:id/quote", middleware.RequireAuth(), h.QuoteFare)

		// Checkout & tickets
		apiGroup.POST("/checkout", middleware.RequireAuth(), h.Checkout)
		tickets := apiGroup.Group("/tickets", middleware.RequireAuth())
		tickets.GET("/:sessionId", h.GetTicket)
		tickets.GET("/:sessionId/pdf", h.GetTicketPDF)

		// Admin CRUD
		admin := apiGroup.Group("/admin", middleware.RequireAdmin())
		admin.POST("/buses", h.CreateBus)
		admin.PUT("/buses/:id", h.UpdateBus)
		admin.DELETE("/buses/:id", h.DeleteBus)
		admin.POST("/buses/:id/stops", h.CreateStop)
		admin.PUT("/buses/:id/stops/:stopId", h.UpdateStop)
		admin.DELETE("/stops/:stopId", h.DeleteStop)
	}

	h.SetRouter(r)
	return r
}
