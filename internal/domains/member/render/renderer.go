package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"membership-gateway/internal/domains/member"
)

// =====================================================
// RESULT RENDERER
// =====================================================
// Mỗi lần render là full repaint từ data - không giữ diff state.
// html/template escape mọi dynamic text theo context, nên field value chứa
// markup luôn hiển thị là literal text. Đây là hard requirement.

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Page là phần chung của mọi view
type Page struct {
	Title string
	Alert string // banner thay cho alert() của trang gốc
}

type RegisterPage struct {
	Page
	Form   member.RegistrationForm
	Errors validation.Errors // field name -> first error
}

type QueryPage struct {
	Page
	Filter   member.SearchFilter
	Searched bool // bảng chỉ xuất hiện sau lần search đầu
	Results  []member.Member
}

type DetailsPage struct {
	Page
	Member member.Member
}

type EditPage struct {
	Page
	Edit   member.EditSession
	Errors validation.Errors
}

type DeleteConfirmPage struct {
	Page
	Member member.Member
}

type LoginPage struct {
	Page
}

func (r *Renderer) Register(w io.Writer, data RegisterPage) error {
	return r.tpl.ExecuteTemplate(w, "register.html", data)
}

func (r *Renderer) Query(w io.Writer, data QueryPage) error {
	return r.tpl.ExecuteTemplate(w, "query.html", data)
}

func (r *Renderer) Details(w io.Writer, data DetailsPage) error {
	return r.tpl.ExecuteTemplate(w, "details.html", data)
}

func (r *Renderer) Edit(w io.Writer, data EditPage) error {
	return r.tpl.ExecuteTemplate(w, "edit.html", data)
}

func (r *Renderer) DeleteConfirm(w io.Writer, data DeleteConfirmPage) error {
	return r.tpl.ExecuteTemplate(w, "delete.html", data)
}

func (r *Renderer) Login(w io.Writer, data LoginPage) error {
	return r.tpl.ExecuteTemplate(w, "login.html", data)
}
