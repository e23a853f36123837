package member_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-gateway/internal/domains/member"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed this year", time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC), 26},
		{"birthday later this year", time.Date(2000, time.December, 25, 0, 0, 0, 0, time.UTC), 25},
		{"birthday today", time.Date(2000, time.August, 29, 0, 0, 0, 0, time.UTC), 26},
		{"birthday tomorrow", time.Date(2000, time.August, 30, 0, 0, 0, 0, time.UTC), 25},
		{"born today", now, 0},
		{"ten years and one day ago", time.Date(2016, time.August, 28, 0, 0, 0, 0, time.UTC), 10},
		{"exactly ten years ago", time.Date(2016, time.August, 29, 0, 0, 0, 0, time.UTC), 10},
		{"nine years 364 days ago", time.Date(2016, time.August, 30, 0, 0, 0, 0, time.UTC), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, member.Age(tt.dob, now))
		})
	}
}

func TestNotInFuture(t *testing.T) {
	now := time.Now().UTC()
	rule := member.NotInFuture()

	t.Run("today is allowed", func(t *testing.T) {
		assert.NoError(t, rule.Validate(now.Format(member.DateLayout)))
	})

	t.Run("tomorrow is rejected", func(t *testing.T) {
		err := rule.Validate(now.AddDate(0, 0, 1).Format(member.DateLayout))
		require.Error(t, err)
		assert.Equal(t, "Date cannot be in the future.", err.Error())
	})

	t.Run("far future is rejected", func(t *testing.T) {
		err := rule.Validate(now.AddDate(5, 0, 0).Format(member.DateLayout))
		require.Error(t, err)
		assert.Equal(t, "Date cannot be in the future.", err.Error())
	})

	t.Run("past is allowed", func(t *testing.T) {
		assert.NoError(t, rule.Validate("1990-01-15"))
	})

	t.Run("empty value skips the rule", func(t *testing.T) {
		assert.NoError(t, rule.Validate(""))
	})

	t.Run("garbage date is rejected", func(t *testing.T) {
		err := rule.Validate("not-a-date")
		require.Error(t, err)
		assert.Equal(t, "Please enter a valid date.", err.Error())
	})
}

func TestMinAge(t *testing.T) {
	now := time.Now()
	rule := member.MinAge(member.MinimumAge)

	t.Run("ten years and one day ago is old enough", func(t *testing.T) {
		dob := now.AddDate(-10, 0, -1).Format(member.DateLayout)
		assert.NoError(t, rule.Validate(dob))
	})

	t.Run("nine years 364 days ago is under age", func(t *testing.T) {
		dob := now.AddDate(-10, 0, 1).Format(member.DateLayout)
		err := rule.Validate(dob)
		require.Error(t, err)
		assert.Equal(t, "You must be at least 10 years old.", err.Error())
	})

	t.Run("born today is under age", func(t *testing.T) {
		err := rule.Validate(now.Format(member.DateLayout))
		require.Error(t, err)
		assert.Equal(t, "You must be at least 10 years old.", err.Error())
	})

	t.Run("empty value skips the rule", func(t *testing.T) {
		assert.NoError(t, rule.Validate(""))
	})
}

func TestMinChars(t *testing.T) {
	rule := member.MinChars(10)

	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"long enough", "abcdefghij", ""},
		{"longer than minimum", "abcdefghijklm", ""},
		{"three short", "abcdefg", "3 more characters required."},
		{"one short", "abcdefghi", "1 more characters required."},
		{"empty skips", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.value)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestPhoneAndEmailRules(t *testing.T) {
	t.Run("phone", func(t *testing.T) {
		assert.NoError(t, member.ValidPhone.Validate("1234567890"))
		assert.NoError(t, member.ValidPhone.Validate(""))

		for _, bad := range []string{"12345", "123456789012", "12345abcde", "+911234567890"} {
			err := member.ValidPhone.Validate(bad)
			require.Error(t, err, bad)
			assert.Equal(t, "Please enter a valid 10-digit phone number.", err.Error())
		}
	})

	t.Run("email", func(t *testing.T) {
		assert.NoError(t, member.ValidEmail.Validate("john@example.com"))
		assert.NoError(t, member.ValidEmail.Validate(""))

		for _, bad := range []string{"john", "john@", "john@example", "jo hn@example.com"} {
			err := member.ValidEmail.Validate(bad)
			require.Error(t, err, bad)
			assert.Equal(t, "Please enter a valid email address.", err.Error())
		}
	})
}
