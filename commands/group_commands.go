package commands

import (
	"salestracker/models"

	"gorm.io/gorm"
)

type DeleteGroupCommand struct {
	groupID uint
	db      *gorm.DB
}

func NewDeleteGroupCommand(groupID uint, db *gorm.DB) *DeleteGroupCommand {
	return &DeleteGroupCommand{
		groupID: groupID,
		db:      db,
	}
}

func (c *DeleteGroupCommand) Execute() error {
	return c.db.Delete(&models.Group{}, c.groupID).Error
}
