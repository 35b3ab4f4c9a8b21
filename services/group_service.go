package services

import (
	"context"
	"fmt"
	"strings"

	"salestracker/commands"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/models"
	"salestracker/services/logger"
	"salestracker/validator"

	"gorm.io/gorm"
)

type GroupServiceInterface interface {
	List(ctx context.Context) ([]dto.GroupResponse, error)
	Create(ctx context.Context, req dto.CreateGroupRequest) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type GroupServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Invalidator CacheInvalidator
}

type GroupService struct {
	db    *gorm.DB
	hooks writeHooks
}

func NewGroupService(opts GroupServiceOptions) *GroupService {
	return &GroupService{
		db:    opts.DB,
		hooks: newWriteHooks(nil, opts.Invalidator, opts.Logger),
	}
}

func (s *GroupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	var groups []models.Group
	if err := s.db.WithContext(ctx).Order("id").Find(&groups).Error; err != nil {
		return nil, storeError(err)
	}
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{ID: g.ID, Name: g.Name})
	}
	return out, nil
}

func (s *GroupService) Create(ctx context.Context, req dto.CreateGroupRequest) (uint, error) {
	group := &models.Group{Name: strings.TrimSpace(req.GroupName)}
	if err := validator.ValidateGroup(group); err != nil {
		return 0, err
	}
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return 0, storeError(err)
	}
	return group.ID, nil
}

// Delete removes an empty group. Members must be reassigned first.
func (s *GroupService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireGroup(tx, id); err != nil {
			return err
		}
		var members int64
		if err := tx.Model(&models.UserGroup{}).Where("group_id = ?", id).Count(&members).Error; err != nil {
			return err
		}
		if members > 0 {
			return errors.Conflict(fmt.Sprintf("Group still has %d member(s); reassign them before deleting it", members))
		}
		return commands.NewDeleteGroupCommand(id, tx).Execute()
	})
	if err != nil {
		return storeError(err)
	}
	s.hooks.committed(ctx, "", nil)
	return nil
}
