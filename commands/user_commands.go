package commands

import (
	"salestracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Command is one step of a multi-step write. Commands are executed against
// a transaction handle and never commit on their own.
type Command interface {
	Execute() error
}

// Run executes commands in order and stops at the first error.
func Run(cmds ...Command) error {
	for _, c := range cmds {
		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}

// CreateUserCommand inserts a user and its group membership.
type CreateUserCommand struct {
	user    *models.User
	groupID uint
	db      *gorm.DB
}

func NewCreateUserCommand(user *models.User, groupID uint, db *gorm.DB) *CreateUserCommand {
	return &CreateUserCommand{
		user:    user,
		groupID: groupID,
		db:      db,
	}
}

func (c *CreateUserCommand) Execute() error {
	if err := c.db.Create(c.user).Error; err != nil {
		return err
	}
	return c.db.Create(&models.UserGroup{UserID: c.user.ID, GroupID: c.groupID}).Error
}

// EditUserCommand applies the non-nil fields to a user.
type EditUserCommand struct {
	userID  uint
	name    *string
	role    *string
	groupID *uint
	db      *gorm.DB
}

func NewEditUserCommand(userID uint, name, role *string, groupID *uint, db *gorm.DB) *EditUserCommand {
	return &EditUserCommand{
		userID:  userID,
		name:    name,
		role:    role,
		groupID: groupID,
		db:      db,
	}
}

func (c *EditUserCommand) Execute() error {
	updates := map[string]interface{}{}
	if c.name != nil {
		updates["name"] = *c.name
	}
	if c.role != nil {
		updates["role"] = *c.role
	}
	if len(updates) > 0 {
		if err := c.db.Model(&models.User{}).Where("id = ?", c.userID).Updates(updates).Error; err != nil {
			return err
		}
	}
	if c.groupID == nil {
		return nil
	}
	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"group_id"}),
	}).Create(&models.UserGroup{UserID: c.userID, GroupID: *c.groupID}).Error
}

// DeleteUserCommand removes a user and its membership. Sales are removed
// separately by DeleteSalesByUserCommand.
type DeleteUserCommand struct {
	userID uint
	db     *gorm.DB
}

func NewDeleteUserCommand(userID uint, db *gorm.DB) *DeleteUserCommand {
	return &DeleteUserCommand{
		userID: userID,
		db:     db,
	}
}

func (c *DeleteUserCommand) Execute() error {
	if err := c.db.Where("user_id = ?", c.userID).Delete(&models.UserGroup{}).Error; err != nil {
		return err
	}
	return c.db.Delete(&models.User{}, c.userID).Error
}
