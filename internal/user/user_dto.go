package user

type UserResponse struct {
	ID          uint   `json:"id"`
	EmpID       string `json:"emp_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ResetStatus bool   `json:"reset_status"`
	CreatedAt   string `json:"created_at"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin hr employee"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		EmpID:       u.EmpID,
		Email:       u.Email,
		Role:        u.Role,
		ResetStatus: u.ResetStatus,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
