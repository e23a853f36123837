package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"membership-gateway/internal/domains/member"
	"membership-gateway/internal/domains/member/controller"
	"membership-gateway/internal/domains/member/render"
	"membership-gateway/internal/shared/middleware"
)

// MemberHandler translate HTTP requests của register/query views thành
// events và render Outcome. Struct stateless - page state nằm trong session.
type MemberHandler struct {
	queryCtl    *controller.QueryController
	registerCtl *controller.RegisterController
	renderer    *render.Renderer
	sessions    *middleware.Sessions
}

func NewMemberHandler(
	queryCtl *controller.QueryController,
	registerCtl *controller.RegisterController,
	renderer *render.Renderer,
	sessions *middleware.Sessions,
) *MemberHandler {
	return &MemberHandler{
		queryCtl:    queryCtl,
		registerCtl: registerCtl,
		renderer:    renderer,
		sessions:    sessions,
	}
}

// ========================================
// REGISTER VIEW
// ========================================

// RegisterPage xử lý GET /register
func (h *MemberHandler) RegisterPage(c *gin.Context) {
	h.renderRegister(c, render.RegisterPage{
		Page: render.Page{Title: "Membership Registration"},
	})
}

// Register xử lý POST /register
func (h *MemberHandler) Register(c *gin.Context) {
	var form member.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderRegister(c, render.RegisterPage{
			Page: render.Page{Title: "Membership Registration", Alert: "Please fix the errors in the form."},
			Form: form,
		})
		return
	}

	out := h.registerCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.RegisterSubmitted{Form: form})
	h.renderOutcome(c, out)
}

// ========================================
// QUERY VIEW
// ========================================

// QueryPage xử lý GET /query - re-render từ session state
func (h *MemberHandler) QueryPage(c *gin.Context) {
	h.renderQuery(c, "")
}

// Search xử lý POST /query
func (h *MemberHandler) Search(c *gin.Context) {
	var filter member.SearchFilter
	if err := c.ShouldBind(&filter); err != nil {
		h.renderQuery(c, member.ErrEmptyFilter.Error())
		return
	}

	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.SearchSubmitted{Filter: filter})
	h.sessions.Save(c)
	h.renderOutcome(c, out)
}

// Details xử lý GET /members/:id/details
func (h *MemberHandler) Details(c *gin.Context) {
	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.DetailsOpened{ID: c.Param("id")})
	h.renderOutcome(c, out)
}

// EditPage xử lý GET /members/:id/edit - mở edit session từ row data
func (h *MemberHandler) EditPage(c *gin.Context) {
	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.EditOpened{ID: c.Param("id")})
	h.sessions.Save(c)
	h.renderOutcome(c, out)
}

// Edit xử lý POST /members/:id/edit - submit draft
func (h *MemberHandler) Edit(c *gin.Context) {
	var form member.EditForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderQuery(c, "Failed to update: invalid form data")
		return
	}

	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.EditSubmitted{Form: form})
	h.sessions.Save(c)
	h.renderOutcome(c, out)
}

// EditCancel xử lý POST /members/:id/edit/cancel
func (h *MemberHandler) EditCancel(c *gin.Context) {
	h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.EditCancelled{})
	h.sessions.Save(c)
	c.Redirect(http.StatusSeeOther, "/query")
}

// DeletePage xử lý GET /members/:id/delete - trang confirm, chưa xóa gì
func (h *MemberHandler) DeletePage(c *gin.Context) {
	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.DeleteRequested{ID: c.Param("id")})
	h.renderOutcome(c, out)
}

// Delete xử lý POST /members/:id/delete - user đã confirm
func (h *MemberHandler) Delete(c *gin.Context) {
	out := h.queryCtl.Dispatch(c.Request.Context(), h.sessions.State(c), controller.DeleteConfirmed{ID: c.Param("id")})
	h.sessions.Save(c)
	h.renderOutcome(c, out)
}

// ========================================
// RENDERING
// ========================================

func (h *MemberHandler) renderOutcome(c *gin.Context, out controller.Outcome) {
	if out.Redirect != "" {
		c.Redirect(http.StatusSeeOther, out.Redirect)
		return
	}

	st := h.sessions.State(c)

	switch out.View {
	case controller.ViewRegister:
		form := member.RegistrationForm{}
		if out.Form != nil {
			form = *out.Form
		}
		h.renderRegister(c, render.RegisterPage{
			Page:   render.Page{Title: "Membership Registration", Alert: out.Alert},
			Form:   form,
			Errors: out.Errors,
		})

	case controller.ViewDetails:
		h.renderHTML(c, func() error {
			return h.renderer.Details(c.Writer, render.DetailsPage{
				Page:   render.Page{Title: "Member Details"},
				Member: *out.Member,
			})
		})

	case controller.ViewEdit:
		if st.Edit == nil {
			h.renderQuery(c, out.Alert)
			return
		}
		h.renderHTML(c, func() error {
			return h.renderer.Edit(c.Writer, render.EditPage{
				Page:   render.Page{Title: "Edit Member", Alert: out.Alert},
				Edit:   *st.Edit,
				Errors: out.Errors,
			})
		})

	case controller.ViewDeleteConfirm:
		h.renderHTML(c, func() error {
			return h.renderer.DeleteConfirm(c.Writer, render.DeleteConfirmPage{
				Page:   render.Page{Title: "Delete Member"},
				Member: *out.Member,
			})
		})

	default:
		h.renderQuery(c, out.Alert)
	}
}

func (h *MemberHandler) renderQuery(c *gin.Context, alert string) {
	st := h.sessions.State(c)

	filter := member.SearchFilter{}
	if st.LastFilter != nil {
		filter = *st.LastFilter
	}

	h.renderHTML(c, func() error {
		return h.renderer.Query(c.Writer, render.QueryPage{
			Page:     render.Page{Title: "Member Search", Alert: alert},
			Filter:   filter,
			Searched: st.LastFilter != nil,
			Results:  st.Results,
		})
	})
}

func (h *MemberHandler) renderRegister(c *gin.Context, data render.RegisterPage) {
	h.renderHTML(c, func() error {
		return h.renderer.Register(c.Writer, data)
	})
}

func (h *MemberHandler) renderHTML(c *gin.Context, fn func() error) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := fn(); err != nil {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Template render failed")
	}
}
