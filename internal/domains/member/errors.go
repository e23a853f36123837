package member

import "errors"

// Local validation errors - các lỗi này không bao giờ chạm tới network.
// Message là text hiển thị trực tiếp cho user nên giữ nguyên dấu câu.
var (
	ErrEmptyFilter    = errors.New("Please enter at least one search criteria.")
	ErrMemberNotFound = errors.New("member is no longer in the current results")
	ErrNoOpenEdit     = errors.New("no edit is currently open")
)
