package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAccountRequest struct {
	Username   string `json:"username" binding:"required,min=3"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"fullName" binding:"required"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AccountResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
	IsActive   bool   `json:"isActive"`
}
