package registry

import "fmt"

// ErrorKind phân loại failure của một registry call
type ErrorKind string

const (
	// KindTransport - connection refused, timeout, body read failure.
	// Operation abandoned, không retry.
	KindTransport ErrorKind = "transport"

	// KindServer - backend trả non-2xx (hoặc 2xx với body không parse được)
	KindServer ErrorKind = "server"
)

// MsgUnreachable là alert text cho mọi transport failure
const MsgUnreachable = "Unable to reach the membership registry. Please try again."

// Error là shape chuẩn hóa duy nhất mà caller nhìn thấy.
// Message luôn hiển thị được cho user; chi tiết kỹ thuật chỉ đi vào log.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status, 0 khi chưa có response
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsTransport reports whether err is a registry transport failure
func IsTransport(err error) bool {
	re, ok := err.(*Error)
	return ok && re.Kind == KindTransport
}

func genericHTTPError(status int) *Error {
	return &Error{
		Kind:    KindServer,
		Status:  status,
		Message: fmt.Sprintf("HTTP error %d", status),
	}
}
