package models

type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Group) TableName() string {
	return "groups"
}
