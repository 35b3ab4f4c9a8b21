package commands

import (
	"salestracker/models"

	"gorm.io/gorm"
)

type CreateSaleCommand struct {
	sale *models.Sale
	db   *gorm.DB
}

func NewCreateSaleCommand(sale *models.Sale, db *gorm.DB) *CreateSaleCommand {
	return &CreateSaleCommand{
		sale: sale,
		db:   db,
	}
}

func (c *CreateSaleCommand) Execute() error {
	return c.db.Create(c.sale).Error
}

type DeleteSaleCommand struct {
	saleID uint
	db     *gorm.DB
}

func NewDeleteSaleCommand(saleID uint, db *gorm.DB) *DeleteSaleCommand {
	return &DeleteSaleCommand{
		saleID: saleID,
		db:     db,
	}
}

func (c *DeleteSaleCommand) Execute() error {
	return c.db.Delete(&models.Sale{}, c.saleID).Error
}

// DeleteSalesByUserCommand removes every sale of a user.
type DeleteSalesByUserCommand struct {
	userID uint
	db     *gorm.DB
}

func NewDeleteSalesByUserCommand(userID uint, db *gorm.DB) *DeleteSalesByUserCommand {
	return &DeleteSalesByUserCommand{
		userID: userID,
		db:     db,
	}
}

func (c *DeleteSalesByUserCommand) Execute() error {
	return c.db.Where("user_id = ?", c.userID).Delete(&models.Sale{}).Error
}
