package member_test

import (
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-gateway/internal/domains/member"
)

func validRegistration() member.RegistrationForm {
	return member.RegistrationForm{
		FirstName:        "John",
		LastName:         "Doe",
		ParentsName:      "Jane Doe",
		Phone:            "9876543210",
		Email:            "john@example.com",
		DOB:              time.Now().AddDate(-20, 0, 0).Format(member.DateLayout),
		Aadhar:           "123412341234",
		Occupation:       "Student",
		CurrentAddress:   "12 Main Street",
		PermanentAddress: "12 Main Street",
		Art:              5,
		Sports:           7,
		Music:            3,
		Technology:       9,
		Literature:       2,
		Science:          8,
		Reason:           strings.Repeat("I want to join the community. ", 3),
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return errs
}

func TestRegistrationFormValidate(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		assert.NoError(t, validRegistration().Validate())
	})

	t.Run("required fields fail with the canonical message", func(t *testing.T) {
		errs := fieldErrors(t, member.RegistrationForm{}.Validate())

		for _, field := range []string{
			"firstName", "lastName", "parentsName", "phone", "email",
			"dob", "aadhar", "occupation", "currentAddress", "permanentAddress", "reason",
		} {
			require.Contains(t, errs, field)
			assert.Equal(t, "This field is required.", errs[field].Error(), field)
		}
	})

	t.Run("optional fields may stay empty", func(t *testing.T) {
		f := validRegistration()
		f.MiddleName = ""
		f.Organization = ""
		assert.NoError(t, f.Validate())
	})

	t.Run("every invalid field is annotated, not just the first", func(t *testing.T) {
		f := validRegistration()
		f.FirstName = ""
		f.Phone = "12345"
		f.Email = "nope"
		errs := fieldErrors(t, f.Validate())

		assert.Len(t, errs, 3)
		assert.Equal(t, "This field is required.", errs["firstName"].Error())
		assert.Equal(t, "Please enter a valid 10-digit phone number.", errs["phone"].Error())
		assert.Equal(t, "Please enter a valid email address.", errs["email"].Error())
	})

	t.Run("future dob fails before the age rule", func(t *testing.T) {
		f := validRegistration()
		f.DOB = time.Now().UTC().AddDate(1, 0, 0).Format(member.DateLayout)
		errs := fieldErrors(t, f.Validate())
		assert.Equal(t, "Date cannot be in the future.", errs["dob"].Error())
	})

	t.Run("under-age dob fails", func(t *testing.T) {
		f := validRegistration()
		f.DOB = time.Now().AddDate(-5, 0, 0).Format(member.DateLayout)
		errs := fieldErrors(t, f.Validate())
		assert.Equal(t, "You must be at least 10 years old.", errs["dob"].Error())
	})

	t.Run("short reason reports the deficit", func(t *testing.T) {
		f := validRegistration()
		f.Reason = strings.Repeat("x", member.ReasonMinLength-7)
		errs := fieldErrors(t, f.Validate())
		assert.Equal(t, "7 more characters required.", errs["reason"].Error())
	})

	t.Run("interest score out of bounds fails", func(t *testing.T) {
		f := validRegistration()
		f.Art = 11
		errs := fieldErrors(t, f.Validate())
		require.Contains(t, errs, "art")
	})

	t.Run("normalize treats whitespace as empty", func(t *testing.T) {
		f := validRegistration()
		f.FirstName = "   "
		f.Normalize()
		errs := fieldErrors(t, f.Validate())
		assert.Equal(t, "This field is required.", errs["firstName"].Error())
	})
}

func TestRegistrationFormToMember(t *testing.T) {
	f := validRegistration()
	m := f.ToMember()

	assert.Empty(t, m.ID, "identifier is server-assigned")
	assert.Equal(t, f.FirstName, m.FirstName)
	assert.Equal(t, f.DOB, m.DOB)
	assert.Equal(t, f.Art, m.Art)
	assert.Equal(t, f.Reason, m.Reason)
	assert.Empty(t, m.CreatedAt)
	assert.Empty(t, m.UpdatedAt)
}

func TestSearchFilterValidate(t *testing.T) {
	t.Run("all fields empty is rejected", func(t *testing.T) {
		err := member.SearchFilter{}.Validate()
		require.Error(t, err)
		assert.Equal(t, member.ErrEmptyFilter, err)
	})

	t.Run("one field is enough", func(t *testing.T) {
		assert.NoError(t, member.SearchFilter{FirstName: "John"}.Validate())
	})

	t.Run("five digit phone is rejected", func(t *testing.T) {
		errs := fieldErrors(t, member.SearchFilter{Phone: "12345"}.Validate())
		assert.Equal(t, "Please enter a valid 10-digit phone number.", errs["searchPhone"].Error())
	})

	t.Run("ten digit phone is accepted", func(t *testing.T) {
		assert.NoError(t, member.SearchFilter{Phone: "1234567890"}.Validate())
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		errs := fieldErrors(t, member.SearchFilter{Email: "john@"}.Validate())
		assert.Equal(t, "Please enter a valid email address.", errs["searchEmail"].Error())
	})
}

func TestEditFormValidate(t *testing.T) {
	valid := member.EditForm{
		Phone:            "9876543210",
		Email:            "john@example.com",
		CurrentAddress:   "12 Main Street",
		PermanentAddress: "12 Main Street",
		Reason:           strings.Repeat("still keen on joining ", 4),
	}

	t.Run("valid draft passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("mutable fields are all required", func(t *testing.T) {
		errs := fieldErrors(t, member.EditForm{}.Validate())
		assert.Len(t, errs, 5)
	})

	t.Run("prepopulated from a row", func(t *testing.T) {
		m := member.Member{
			ID:               "abc123",
			Phone:            "1112223334",
			Email:            "row@example.com",
			CurrentAddress:   "A",
			PermanentAddress: "B",
			Reason:           "because",
		}
		f := member.EditFormFor(m)
		assert.Equal(t, m.Phone, f.Phone)
		assert.Equal(t, m.Email, f.Email)
		assert.Equal(t, m.Reason, f.Reason)
	})
}

func TestMemberFullName(t *testing.T) {
	m := member.Member{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", m.FullName())
}
