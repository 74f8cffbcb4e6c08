package user

type UserReq struct {
	Name      string `json:"name" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin student"`
}
