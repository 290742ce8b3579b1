package handler

import (
	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// Register mounts the API on e
func (h *Handler) Register(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.jwt)
	optionalAuth := middleware.OptionalJWTAuth(h.jwt)
	ownerOnly := middleware.RequireRole(model.RoleOwner)

	e.GET("/", Root)
	e.GET("/health", HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.Signup)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.Me, auth)

	properties := api.Group("/properties")
	properties.POST("/add", h.CreateProperty, auth, ownerOnly)
	properties.GET("", h.ListProperties)
	properties.GET("/search", h.SearchProperties)
	properties.GET("/mine", h.MyProperties, auth)
	properties.GET("/:id", h.GetProperty)
	properties.PUT("/:id", h.UpdateProperty, auth)
	properties.DELETE("/:id", h.DeleteProperty, auth)

	messages := api.Group("/messages")
	messages.POST("", h.CreateMessage, optionalAuth)
	messages.GET("", h.ListMessages, auth)
	messages.PATCH("/:id/read", h.MarkMessageRead, auth)
	messages.PUT("/:id/read", h.MarkMessageRead, auth)

	api.GET("/dashboard", h.Dashboard, auth, ownerOnly)
	api.GET("/geocode", h.Geocode)
}
