package controller

import (
	"context"
	"strings"

	"membership-gateway/internal/infrastructure/session"
)

// =====================================================
// ADMIN VIEW CONTROLLER
// =====================================================

// FallbackToken được dùng khi backend login thành công nhưng không trả token.
// Giá trị cố định, khớp với placeholder mà backend tự dùng.
const FallbackToken = "admin-token"

type AdminController struct {
	registry Registry
}

func NewAdminController(reg Registry) *AdminController {
	return &AdminController{registry: reg}
}

func (c *AdminController) Dispatch(ctx context.Context, st *session.State, ev Event) Outcome {
	switch ev := ev.(type) {
	case LoginSubmitted:
		return c.login(ctx, st, ev.Username, ev.Password)
	case LogoutRequested:
		return c.logout(st)
	default:
		return Outcome{View: ViewLogin}
	}
}

func (c *AdminController) login(ctx context.Context, st *session.State, username, password string) Outcome {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		// Local reject trước mọi network call
		return Outcome{View: ViewLogin, Alert: "Please enter both username and password."}
	}

	token, err := c.registry.AdminLogin(ctx, username, password)
	if err != nil {
		return Outcome{View: ViewLogin, Alert: err.Error()}
	}

	if token == "" {
		token = FallbackToken
	}
	st.AdminToken = token

	return Outcome{Redirect: "/query"}
}

func (c *AdminController) logout(st *session.State) Outcome {
	// Explicit logout là cách duy nhất xóa token ngoài việc session hết hạn
	st.AdminToken = ""
	return Outcome{Redirect: "/admin"}
}
