package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	UserID uint            `gorm:"not null;index" json:"userId"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date   time.Time       `gorm:"type:date;not null;index" json:"date"`
}

func (Sale) TableName() string {
	return "sales"
}

// All returns every persisted model, in dependency order.
func All() []interface{} {
	return []interface{}{&Group{}, &User{}, &UserGroup{}, &Sale{}}
}
