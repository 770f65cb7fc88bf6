package dto

// UserRequest serves both create and update. Password is mandatory on
// create only; on update a blank password keeps the old one.
type UserRequest struct {
	Username    string   `json:"username" validate:"required,max=20"`
	Email       string   `json:"email" validate:"required,email,max=50"`
	Password    string   `json:"password" validate:"omitempty,min=6,max=120"`
	DateOfBirth string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Roles       []string `json:"roles" validate:"required,min=1"`
}

type UserResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	DateOfBirth *string  `json:"dateOfBirth"`
	Roles       []string `json:"roles"`
}
