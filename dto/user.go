package dto

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Role    string `json:"role" binding:"required,salesrole"`
	GroupID uint   `json:"groupId" binding:"required,min=1"`
}

// EditUserRequest is the body of PATCH /users/:userId. Absent fields are left as is.
type EditUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank"`
	Role    *string `json:"role" binding:"omitempty,salesrole"`
	GroupID *uint   `json:"groupId" binding:"omitempty,min=1"`
}

type DeleteUserQuery struct {
	FullDelete bool `form:"fullDelete"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	GroupID uint   `json:"groupId,omitempty"`
}
