package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"membership-gateway/internal/domains/member/controller"
	"membership-gateway/internal/domains/member/render"
	"membership-gateway/internal/shared/middleware"
)

// AdminHandler phục vụ admin login view
type AdminHandler struct {
	adminCtl *controller.AdminController
	renderer *render.Renderer
	sessions *middleware.Sessions
}

func NewAdminHandler(
	adminCtl *controller.AdminController,
	renderer *render.Renderer,
	sessions *middleware.Sessions,
) *AdminHandler {
	return &AdminHandler{
		adminCtl: adminCtl,
		renderer: renderer,
		sessions: sessions,
	}
}

// LoginPage xử lý GET /admin
func (h *AdminHandler) LoginPage(c *gin.Context) {
	// Đã login thì đi thẳng vào query view
	if h.sessions.State(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/query")
		return
	}
	h.renderLogin(c, "")
}

// Login xử lý POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	out := h.adminCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.LoginSubmitted{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})
	h.sessions.Save(c)

	if out.Redirect != "" {
		c.Redirect(http.StatusSeeOther, out.Redirect)
		return
	}
	h.renderLogin(c, out.Alert)
}

// Logout xử lý POST /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	out := h.adminCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.LogoutRequested{})
	h.sessions.Save(c)
	c.Redirect(http.StatusSeeOther, out.Redirect)
}

func (h *AdminHandler) renderLogin(c *gin.Context, alert string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := h.renderer.Login(c.Writer, render.LoginPage{
		Page: render.Page{Title: "Admin Login", Alert: alert},
	})
	if err != nil {
		log.Error().Err(err).Msg("Template render failed")
	}
}
