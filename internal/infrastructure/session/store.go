package session

import (
	"context"

	"membership-gateway/internal/domains/member"
)

// State là toàn bộ mutable state của một browser session.
// Thay cho localStorage + DOM state của trang: token admin, filter cuối cùng,
// kết quả đang hiển thị và edit session đang mở (nil = Closed).
type State struct {
	AdminToken string               `json:"adminToken,omitempty"`
	LastFilter *member.SearchFilter `json:"lastFilter,omitempty"`
	Results    []member.Member      `json:"results,omitempty"`
	Edit       *member.EditSession  `json:"edit,omitempty"`
}

// LoggedIn reports whether an admin token is present.
// Token là opaque string - gateway không bao giờ parse nó.
func (s *State) LoggedIn() bool {
	return s.AdminToken != ""
}

// FindResult looks a member up in the currently displayed results
func (s *State) FindResult(id string) (member.Member, bool) {
	for _, m := range s.Results {
		if m.ID == id {
			return m, true
		}
	}
	return member.Member{}, false
}

// Store persists per-browser session state.
// Load của một session chưa tồn tại trả về State rỗng, không phải error.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, state *State) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
