package controller

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"membership-gateway/internal/domains/member"
)

// Registry là phần API backend mà controllers cần.
// Interface khai báo ở consumer side; registry.Client implement nó.
type Registry interface {
	Register(ctx context.Context, m member.Member) (string, error)
	Search(ctx context.Context, f member.SearchFilter) ([]member.Member, error)
	Update(ctx context.Context, id string, p member.UpdatePatch) (string, error)
	Delete(ctx context.Context, id string) error
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

// View là trang mà handler phải render sau khi dispatch
type View string

const (
	ViewRegister      View = "register"
	ViewQuery         View = "query"
	ViewDetails       View = "details"
	ViewEdit          View = "edit"
	ViewDeleteConfirm View = "delete"
	ViewLogin         View = "login"
)

// Outcome mô tả kết quả của một event: render view nào, với alert /
// field errors nào, hoặc redirect đi đâu. Mọi failure đều nằm trong đây -
// dispatch không bao giờ panic hay trả failure dạng khác.
type Outcome struct {
	View     View
	Redirect string // non-empty -> redirect thay vì render

	Alert  string            // banner message (success hoặc failure)
	Errors validation.Errors // field-scoped validation errors

	Member *member.Member           // subject của details / delete confirm
	Form   *member.RegistrationForm // form values để re-render register view
}
