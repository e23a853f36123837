package controller

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"membership-gateway/internal/domains/member"
	"membership-gateway/internal/infrastructure/registry"
	"membership-gateway/internal/infrastructure/session"
)

// =====================================================
// REGISTER VIEW CONTROLLER
// =====================================================

type RegisterController struct {
	registry Registry
}

func NewRegisterController(reg Registry) *RegisterController {
	return &RegisterController{registry: reg}
}

func (c *RegisterController) Dispatch(ctx context.Context, st *session.State, ev Event) Outcome {
	switch ev := ev.(type) {
	case RegisterSubmitted:
		return c.submit(ctx, ev.Form)
	default:
		return Outcome{View: ViewRegister, Form: &member.RegistrationForm{}}
	}
}

func (c *RegisterController) submit(ctx context.Context, form member.RegistrationForm) Outcome {
	form.Normalize()

	if err := form.Validate(); err != nil {
		// Mọi field đều được validate và annotate - user thấy tất cả lỗi
		// một lượt, không chỉ lỗi đầu tiên
		var errs validation.Errors
		if errors.As(err, &errs) {
			return Outcome{
				View:   ViewRegister,
				Form:   &form,
				Errors: errs,
				Alert:  "Please fix the errors in the form.",
			}
		}
		return Outcome{View: ViewRegister, Form: &form, Alert: err.Error()}
	}

	msg, err := c.registry.Register(ctx, form.ToMember())
	if err != nil {
		alert := err.Error()
		if !registry.IsTransport(err) {
			alert = "Error: " + alert
		}
		return Outcome{View: ViewRegister, Form: &form, Alert: alert}
	}

	// Thành công: reset form như trang gốc làm với form.reset()
	return Outcome{View: ViewRegister, Form: &member.RegistrationForm{}, Alert: msg}
}
