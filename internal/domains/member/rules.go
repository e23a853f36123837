package member

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// FIELD RULES
// ========================================
// Mỗi field đi qua một rule chain, first failure wins (ozzo dừng tại rule
// fail đầu tiên của field). Optional field để trống thì mọi rule tự skip,
// matching the registration form behavior end users already know.

const (
	// MinimumAge là tuổi tối thiểu để đăng ký
	MinimumAge = 10

	// ReasonMinLength là số ký tự tối thiểu của field reason
	ReasonMinLength = 50

	// DateLayout matches the registry backend's dob wire format
	DateLayout = "2006-01-02"

	// InterestMin/Max bound the six interest slider scores
	InterestMin = 0
	InterestMax = 10
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	// Loose local@domain.tld shape, same check the query form always applied.
	// Deliberately not full RFC 5322 - the backend re-validates anyway.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var (
	// Required với message chuẩn của form
	Required = validation.Required.Error("This field is required.")

	// ValidPhone enforces exactly 10 ASCII digits
	ValidPhone = validation.Match(phonePattern).Error("Please enter a valid 10-digit phone number.")

	// ValidEmail enforces the loose local@domain.tld shape
	ValidEmail = validation.Match(emailPattern).Error("Please enter a valid email address.")
)

// NotInFuture rejects calendar dates after today.
// Today itself is allowed (d <= today).
func NotInFuture() validation.Rule {
	return notInFutureRule{}
}

type notInFutureRule struct{}

func (notInFutureRule) Validate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return errors.New("Please enter a valid date.")
	}
	if d.After(today()) {
		return errors.New("Date cannot be in the future.")
	}
	return nil
}

// MinAge rejects dates of birth younger than years at submission time
func MinAge(years int) validation.Rule {
	return minAgeRule{years: years}
}

type minAgeRule struct {
	years int
}

func (r minAgeRule) Validate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return errors.New("Please enter a valid date.")
	}
	if Age(d, time.Now()) < r.years {
		return fmt.Errorf("You must be at least %d years old.", r.years)
	}
	return nil
}

// MinChars reports the remaining deficit instead of a flat "too short",
// giống live feedback của reason textarea.
func MinChars(min int) validation.Rule {
	return minCharsRule{min: min}
}

type minCharsRule struct {
	min int
}

func (r minCharsRule) Validate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if missing := r.min - utf8.RuneCountInString(s); missing > 0 {
		return fmt.Errorf("%d more characters required.", missing)
	}
	return nil
}

// Age tính tuổi theo calendar years: year difference, trừ 1 nếu sinh nhật
// năm nay chưa tới. Không dùng xấp xỉ 365.25 ngày.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// today returns the current date at midnight UTC, comparable with parsed
// DateLayout values
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
