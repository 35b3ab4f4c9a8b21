package services

import (
	"context"
	stderrors "errors"

	"salestracker/errors"
	"salestracker/models"

	"gorm.io/gorm"
)

// Directory answers the existence and membership questions the revenue
// core asks of the entity tables.
type Directory interface {
	UserExists(ctx context.Context, id uint) (bool, error)
	GroupExists(ctx context.Context, id uint) (bool, error)
	FindUsersByGroups(ctx context.Context, groupIDs []uint) ([]uint, error)
	FindUsersByRoles(ctx context.Context, roles []string) ([]uint, error)
}

// GormDirectory implements Directory over the relational store.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) UserExists(ctx context.Context, id uint) (bool, error) {
	return exists(d.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id))
}

func (d *GormDirectory) GroupExists(ctx context.Context, id uint) (bool, error) {
	return exists(d.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id))
}

func (d *GormDirectory) FindUsersByGroups(ctx context.Context, groupIDs []uint) ([]uint, error) {
	var ids []uint
	if err := d.db.WithContext(ctx).Model(&models.UserGroup{}).
		Where("group_id IN ?", groupIDs).
		Order("user_id").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, storeError(err)
	}
	return ids, nil
}

func (d *GormDirectory) FindUsersByRoles(ctx context.Context, roles []string) ([]uint, error) {
	var ids []uint
	if err := d.db.WithContext(ctx).Model(&models.User{}).
		Where("role IN ?", roles).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, storeError(err)
	}
	return ids, nil
}

func exists(q *gorm.DB) (bool, error) {
	var count int64
	if err := q.Limit(1).Count(&count).Error; err != nil {
		return false, storeError(err)
	}
	return count > 0, nil
}

// storeError translates a gorm error at a data-access boundary. Missing rows
// are left to callers, everything else becomes StoreUnavailable.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	return errors.StoreUnavailable(err)
}

// isNotFound reports whether err is gorm's record-not-found.
func isNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}
