package controller

import "membership-gateway/internal/domains/member"

// ========================================
// VIEW EVENTS
// ========================================
// Mỗi user interaction là một event type tường minh, dispatch vào đúng một
// controller cho view đó. HTTP handler chỉ translate request -> event,
// nên toàn bộ page logic test được không cần live UI.

type Event interface {
	isEvent()
}

// Query view events

type SearchSubmitted struct {
	Filter member.SearchFilter
}

type DetailsOpened struct {
	ID string
}

type EditOpened struct {
	ID string
}

type EditSubmitted struct {
	Form member.EditForm
}

type EditCancelled struct{}

// DeleteRequested mở trang confirm; chưa có gì bị xóa
type DeleteRequested struct {
	ID string
}

// DeleteConfirmed là confirm tường minh của user, lúc này mới gọi backend
type DeleteConfirmed struct {
	ID string
}

// Register view events

type RegisterSubmitted struct {
	Form member.RegistrationForm
}

// Admin view events

type LoginSubmitted struct {
	Username string
	Password string
}

type LogoutRequested struct{}

func (SearchSubmitted) isEvent()   {}
func (DetailsOpened) isEvent()     {}
func (EditOpened) isEvent()        {}
func (EditSubmitted) isEvent()     {}
func (EditCancelled) isEvent()     {}
func (DeleteRequested) isEvent()   {}
func (DeleteConfirmed) isEvent()   {}
func (RegisterSubmitted) isEvent() {}
func (LoginSubmitted) isEvent()    {}
func (LogoutRequested) isEvent()   {}
