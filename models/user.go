package models

// User is a sales agent. The current group lives in UserGroup, not here.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Role string `gorm:"not null;index" json:"role"`
}

func (User) TableName() string {
	return "users"
}
