package controller

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"membership-gateway/internal/domains/member"
	"membership-gateway/internal/infrastructure/session"
)

// =====================================================
// QUERY VIEW CONTROLLER
// =====================================================
// Search + result table + details/edit/delete actions. State của view
// (last filter, results, edit session) sống trong session.State; mỗi event
// được xử lý trọn vẹn trước event kế tiếp.

type QueryController struct {
	registry Registry
}

func NewQueryController(registry Registry) *QueryController {
	return &QueryController{registry: registry}
}

// Dispatch là entry point duy nhất của view: một event vào, một Outcome ra
func (c *QueryController) Dispatch(ctx context.Context, st *session.State, ev Event) Outcome {
	switch ev := ev.(type) {
	case SearchSubmitted:
		return c.search(ctx, st, ev.Filter)
	case DetailsOpened:
		return c.details(st, ev.ID)
	case EditOpened:
		return c.openEdit(st, ev.ID)
	case EditSubmitted:
		return c.submitEdit(ctx, st, ev.Form)
	case EditCancelled:
		return c.cancelEdit(st)
	case DeleteRequested:
		return c.requestDelete(st, ev.ID)
	case DeleteConfirmed:
		return c.confirmDelete(ctx, st, ev.ID)
	default:
		return Outcome{View: ViewQuery}
	}
}

func (c *QueryController) search(ctx context.Context, st *session.State, f member.SearchFilter) Outcome {
	f.Normalize()
	if err := f.Validate(); err != nil {
		// Local reject - không có network call nào xảy ra
		return Outcome{View: ViewQuery, Alert: filterAlert(err)}
	}

	results, err := c.registry.Search(ctx, f)
	if err != nil {
		return Outcome{View: ViewQuery, Alert: "Search failed: " + err.Error()}
	}

	st.LastFilter = &f
	st.Results = results
	return Outcome{View: ViewQuery}
}

func (c *QueryController) details(st *session.State, id string) Outcome {
	m, ok := st.FindResult(id)
	if !ok {
		return Outcome{View: ViewQuery, Alert: member.ErrMemberNotFound.Error()}
	}
	// Read-only: không đụng vào state
	return Outcome{View: ViewDetails, Member: &m}
}

func (c *QueryController) openEdit(st *session.State, id string) Outcome {
	m, ok := st.FindResult(id)
	if !ok {
		return Outcome{View: ViewQuery, Alert: member.ErrMemberNotFound.Error()}
	}
	// Mở session mới ghi đè draft cũ nếu có - last-writer-wins, không merge
	st.Edit = member.OpenEdit(m)
	return Outcome{View: ViewEdit}
}

func (c *QueryController) submitEdit(ctx context.Context, st *session.State, form member.EditForm) Outcome {
	if st.Edit == nil {
		return Outcome{View: ViewQuery, Alert: member.ErrNoOpenEdit.Error()}
	}

	form.Normalize()
	// Draft luôn giữ những gì user vừa gõ, kể cả khi invalid
	st.Edit.Draft = form

	if err := form.Validate(); err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			return Outcome{View: ViewEdit, Errors: errs}
		}
		return Outcome{View: ViewEdit, Alert: err.Error()}
	}

	msg, err := c.registry.Update(ctx, st.Edit.MemberID, form.ToPatch())
	if err != nil {
		// Session vẫn mở, bảng giữ nguyên
		return Outcome{View: ViewEdit, Alert: "Failed to update: " + err.Error()}
	}

	st.Edit = nil
	c.refresh(ctx, st)
	return Outcome{View: ViewQuery, Alert: msg}
}

func (c *QueryController) cancelEdit(st *session.State) Outcome {
	st.Edit = nil
	return Outcome{View: ViewQuery}
}

func (c *QueryController) requestDelete(st *session.State, id string) Outcome {
	m, ok := st.FindResult(id)
	if !ok {
		return Outcome{View: ViewQuery, Alert: member.ErrMemberNotFound.Error()}
	}
	return Outcome{View: ViewDeleteConfirm, Member: &m}
}

func (c *QueryController) confirmDelete(ctx context.Context, st *session.State, id string) Outcome {
	if err := c.registry.Delete(ctx, id); err != nil {
		// Bảng giữ nguyên khi delete fail
		return Outcome{View: ViewQuery, Alert: err.Error()}
	}

	c.refresh(ctx, st)
	return Outcome{View: ViewQuery, Alert: "Deleted successfully."}
}

// refresh re-issues the last search sau một mutation thành công.
// Refresh fail thì giữ bảng cũ và chỉ log - mutation đã thành công rồi,
// không biến nó thành failure trước mặt user.
func (c *QueryController) refresh(ctx context.Context, st *session.State) {
	if st.LastFilter == nil {
		st.Results = nil
		return
	}

	results, err := c.registry.Search(ctx, *st.LastFilter)
	if err != nil {
		log.Error().Err(err).Msg("Re-query after mutation failed")
		return
	}
	st.Results = results
}

// filterAlert flattens filter validation errors thành một alert, phone check
// trước email như thứ tự form gốc
func filterAlert(err error) string {
	var errs validation.Errors
	if errors.As(err, &errs) {
		if e, ok := errs["searchPhone"]; ok {
			return e.Error()
		}
		if e, ok := errs["searchEmail"]; ok {
			return e.Error()
		}
		for _, e := range errs {
			return e.Error()
		}
	}
	return err.Error()
}
