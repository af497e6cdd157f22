package employee

type CreateEmployeeRequest struct {
	ID               string `json:"id"` // optional; generated as NV### when blank
	FullName         string `json:"fullName" binding:"required"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Position         string `json:"position"`
	Qualification    string `json:"qualification"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	ContractDate     string `json:"contractDate"`
	JoinDate         string `json:"joinDate"`
	Hometown         string `json:"hometown"`
	PermanentAddress string `json:"permanentAddress"`
	IDCardNumber     string `json:"idCardNumber"`
	IDCardDate       string `json:"idCardDate"`
	IDCardPlace      string `json:"idCardPlace"`
	Status           string `json:"status"`
	AvatarURL        string `json:"avatarUrl"`
	FileURL          string `json:"fileUrl"`
	Notes            string `json:"notes"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"fullName" binding:"required"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Position         string `json:"position"`
	Qualification    string `json:"qualification"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	ContractDate     string `json:"contractDate"`
	JoinDate         string `json:"joinDate"`
	Hometown         string `json:"hometown"`
	PermanentAddress string `json:"permanentAddress"`
	IDCardNumber     string `json:"idCardNumber"`
	IDCardDate       string `json:"idCardDate"`
	IDCardPlace      string `json:"idCardPlace"`
	Status           string `json:"status"`
	AvatarURL        string `json:"avatarUrl"`
	FileURL          string `json:"fileUrl"`
	Notes            string `json:"notes"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	DOB              string `json:"dob,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Position         string `json:"position,omitempty"`
	Qualification    string `json:"qualification,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	ContractDate     string `json:"contractDate,omitempty"`
	JoinDate         string `json:"joinDate,omitempty"`
	Hometown         string `json:"hometown,omitempty"`
	PermanentAddress string `json:"permanentAddress,omitempty"`
	IDCardNumber     string `json:"idCardNumber,omitempty"`
	IDCardDate       string `json:"idCardDate,omitempty"`
	IDCardPlace      string `json:"idCardPlace,omitempty"`
	Status           string `json:"status"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	FileURL          string `json:"fileUrl,omitempty"`
	Notes            string `json:"notes,omitempty"`
}
