package models

// UserGroup is the membership row. UserID is the primary key, so a user has
// at most one group and reassignment overwrites the row.
type UserGroup struct {
	UserID  uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	GroupID uint `gorm:"not null;index" json:"groupId"`
}

func (UserGroup) TableName() string {
	return "user_groups"
}
