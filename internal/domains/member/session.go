package member

// EditSession là draft state cho MỘT record đang sửa dở.
// Lifecycle: Closed -> Open(id, draft) -> Closed. Save thành công hoặc cancel
// đều đóng session; mở record khác ghi đè draft cũ (last-writer-wins).
type EditSession struct {
	MemberID string   `json:"memberId"`
	Draft    EditForm `json:"draft"`
}

// OpenEdit copies the row's current mutable fields into a fresh draft
func OpenEdit(m Member) *EditSession {
	return &EditSession{
		MemberID: m.ID,
		Draft:    EditFormFor(m),
	}
}
