package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"membership-gateway/internal/shared/middleware"
	"membership-gateway/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		c.Sessions.Middleware(),
	)

	// Health check
	router.GET("/healthz", healthCheckHandler(c))

	// Landing page đi thẳng vào registration form
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusSeeOther, "/register")
	})

	setupRegisterRoutes(router, c)
	setupQueryRoutes(router, c)
	setupAdminRoutes(router, c)

	return router
}

// ========================================
// REGISTER ROUTES
// ========================================
func setupRegisterRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/register", c.MemberHandler.RegisterPage)
	router.POST("/register", c.MemberHandler.Register)
}

// ========================================
// QUERY ROUTES (privileged - cần admin token trong session)
// ========================================
func setupQueryRoutes(router *gin.Engine, c *container.Container) {
	query := router.Group("/")
	query.Use(c.Sessions.RequireAdmin())
	{
		query.GET("/query", c.MemberHandler.QueryPage)
		query.POST("/query", c.MemberHandler.Search)
		query.GET("/members/:id/details", c.MemberHandler.Details)
		query.GET("/members/:id/edit", c.MemberHandler.EditPage)
		query.POST("/members/:id/edit", c.MemberHandler.Edit)
		query.POST("/members/:id/edit/cancel", c.MemberHandler.EditCancel)
		query.GET("/members/:id/delete", c.MemberHandler.DeletePage)
		query.POST("/members/:id/delete", c.MemberHandler.Delete)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/admin", c.AdminHandler.LoginPage)
	router.POST("/admin/login", c.AdminHandler.Login)
	router.POST("/admin/logout", c.AdminHandler.Logout)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		}

		// Backend reachability - degraded, not dead, khi registry down
		if err := c.Registry.Health(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["registry"] = err.Error()
			ctx.JSON(http.StatusOK, health)
			return
		}
		health["registry"] = "ok"

		ctx.JSON(http.StatusOK, health)
	}
}
