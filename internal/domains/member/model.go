package member

// Member là registry record trả về từ backend.
// JSON tags match the registry REST API wire format exactly (_id, dob
// "2006-01-02", timestamps "2006-01-02 15:04:05"); dates stay strings because
// the backend owns their formatting.
type Member struct {
	ID               string `json:"_id,omitempty"`
	FirstName        string `json:"firstName"`
	MiddleName       string `json:"middleName,omitempty"`
	LastName         string `json:"lastName"`
	ParentsName      string `json:"parentsName"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	DOB              string `json:"dob"`
	Aadhar           string `json:"aadhar"`
	Occupation       string `json:"occupation"`
	Organization     string `json:"organization,omitempty"`
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	Art              int    `json:"art"`
	Sports           int    `json:"sports"`
	Music            int    `json:"music"`
	Technology       int    `json:"technology"`
	Literature       int    `json:"literature"`
	Science          int    `json:"science"`
	Reason           string `json:"reason"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// FullName returns "First Last" joined by a single space
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// UpdatePatch là mutable subset cho PUT /api/members/:id
// Backend chỉ cho phép sửa contact info và reason; mọi field khác immutable.
type UpdatePatch struct {
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	Reason           string `json:"reason"`
}
