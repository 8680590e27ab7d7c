package dto

// AddUserRequest captures the fields needed to register a user.
type AddUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}
