package member

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REGISTRATION FORM
// ========================================

// RegistrationForm là toàn bộ field của registration view.
// Form tags match the input names the templates render; json tags match the
// ozzo error keys so inline messages land next to the right field.
type RegistrationForm struct {
	FirstName        string `form:"firstName" json:"firstName"`
	MiddleName       string `form:"middleName" json:"middleName"`
	LastName         string `form:"lastName" json:"lastName"`
	ParentsName      string `form:"parentsName" json:"parentsName"`
	Phone            string `form:"phone" json:"phone"`
	Email            string `form:"email" json:"email"`
	DOB              string `form:"dob" json:"dob"`
	Aadhar           string `form:"aadhar" json:"aadhar"`
	Occupation       string `form:"occupation" json:"occupation"`
	Organization     string `form:"organization" json:"organization"`
	CurrentAddress   string `form:"currentAddress" json:"currentAddress"`
	PermanentAddress string `form:"permanentAddress" json:"permanentAddress"`
	Art              int    `form:"art" json:"art"`
	Sports           int    `form:"sports" json:"sports"`
	Music            int    `form:"music" json:"music"`
	Technology       int    `form:"technology" json:"technology"`
	Literature       int    `form:"literature" json:"literature"`
	Science          int    `form:"science" json:"science"`
	Reason           string `form:"reason" json:"reason"`
}

// Normalize trims whitespace trước khi validate.
// Whitespace-only input được coi là empty, y như form gốc.
func (f *RegistrationForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.MiddleName = strings.TrimSpace(f.MiddleName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.ParentsName = strings.TrimSpace(f.ParentsName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.DOB = strings.TrimSpace(f.DOB)
	f.Aadhar = strings.TrimSpace(f.Aadhar)
	f.Occupation = strings.TrimSpace(f.Occupation)
	f.Organization = strings.TrimSpace(f.Organization)
	f.CurrentAddress = strings.TrimSpace(f.CurrentAddress)
	f.PermanentAddress = strings.TrimSpace(f.PermanentAddress)
	f.Reason = strings.TrimSpace(f.Reason)
}

// Validate chạy rule chain của TỪNG field và gom lỗi theo field.
// ozzo validate tất cả field (không short-circuit giữa các field) nên user
// thấy mọi lỗi cùng lúc; within one field, first failure wins.
func (f RegistrationForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName, Required),
		validation.Field(&f.LastName, Required),
		validation.Field(&f.ParentsName, Required),
		validation.Field(&f.Phone, Required, ValidPhone),
		validation.Field(&f.Email, Required, ValidEmail),
		validation.Field(&f.DOB, Required, NotInFuture(), MinAge(MinimumAge)),
		validation.Field(&f.Aadhar, Required),
		validation.Field(&f.Occupation, Required),
		validation.Field(&f.CurrentAddress, Required),
		validation.Field(&f.PermanentAddress, Required),
		validation.Field(&f.Art, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Sports, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Music, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Technology, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Literature, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Science, validation.Min(InterestMin), validation.Max(InterestMax)),
		validation.Field(&f.Reason, Required, MinChars(ReasonMinLength)),
	)
}

// ToMember builds the wire record from an already-validated form.
// Chỉ gọi sau khi Validate() pass.
func (f RegistrationForm) ToMember() Member {
	return Member{
		FirstName:        f.FirstName,
		MiddleName:       f.MiddleName,
		LastName:         f.LastName,
		ParentsName:      f.ParentsName,
		Phone:            f.Phone,
		Email:            f.Email,
		DOB:              f.DOB,
		Aadhar:           f.Aadhar,
		Occupation:       f.Occupation,
		Organization:     f.Organization,
		CurrentAddress:   f.CurrentAddress,
		PermanentAddress: f.PermanentAddress,
		Art:              f.Art,
		Sports:           f.Sports,
		Music:            f.Music,
		Technology:       f.Technology,
		Literature:       f.Literature,
		Science:          f.Science,
		Reason:           f.Reason,
	}
}

// ========================================
// SEARCH FILTER
// ========================================

// SearchFilter là sparse filter của query view.
// Form/query tags giữ nguyên tên param backend expect (searchFName...).
// Đây là contract chính thức; biến thể name/dob/phone cũ đã bị thay thế.
type SearchFilter struct {
	FirstName string `form:"searchFName" json:"searchFName"`
	LastName  string `form:"searchLName" json:"searchLName"`
	Email     string `form:"searchEmail" json:"searchEmail"`
	Phone     string `form:"searchPhone" json:"searchPhone"`
}

func (f *SearchFilter) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}

// IsEmpty reports whether no criteria was entered at all
func (f SearchFilter) IsEmpty() bool {
	return f.FirstName == "" && f.LastName == "" && f.Email == "" && f.Phone == ""
}

// Validate enforces ít nhất một criteria, rồi check shape của từng field
// có mặt. Mọi lỗi đều local - chưa có network call nào xảy ra.
func (f SearchFilter) Validate() error {
	if f.IsEmpty() {
		return ErrEmptyFilter
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.Phone, ValidPhone),
		validation.Field(&f.Email, ValidEmail),
	)
}

// ========================================
// EDIT FORM
// ========================================

// EditForm là draft của một edit session: mutable subset của member
type EditForm struct {
	Phone            string `form:"phone" json:"phone"`
	Email            string `form:"email" json:"email"`
	CurrentAddress   string `form:"currentAddress" json:"currentAddress"`
	PermanentAddress string `form:"permanentAddress" json:"permanentAddress"`
	Reason           string `form:"reason" json:"reason"`
}

func (f *EditForm) Normalize() {
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.CurrentAddress = strings.TrimSpace(f.CurrentAddress)
	f.PermanentAddress = strings.TrimSpace(f.PermanentAddress)
	f.Reason = strings.TrimSpace(f.Reason)
}

func (f EditForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Phone, Required, ValidPhone),
		validation.Field(&f.Email, Required, ValidEmail),
		validation.Field(&f.CurrentAddress, Required),
		validation.Field(&f.PermanentAddress, Required),
		validation.Field(&f.Reason, Required, MinChars(ReasonMinLength)),
	)
}

// ToPatch builds the PUT body from a validated draft
func (f EditForm) ToPatch() UpdatePatch {
	return UpdatePatch{
		Phone:            f.Phone,
		Email:            f.Email,
		CurrentAddress:   f.CurrentAddress,
		PermanentAddress: f.PermanentAddress,
		Reason:           f.Reason,
	}
}

// EditFormFor pre-populates a draft from a row's current mutable fields
func EditFormFor(m Member) EditForm {
	return EditForm{
		Phone:            m.Phone,
		Email:            m.Email,
		CurrentAddress:   m.CurrentAddress,
		PermanentAddress: m.PermanentAddress,
		Reason:           m.Reason,
	}
}
