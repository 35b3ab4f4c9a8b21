package dto

type CreateGroupRequest struct {
	GroupName string `json:"groupName" binding:"required,notblank"`
}

type GroupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
