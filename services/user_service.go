package services

import (
	"context"
	"strings"

	"salestracker/commands"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/events"
	"salestracker/models"
	"salestracker/services/logger"
	"salestracker/validator"

	"gorm.io/gorm"
)

type UserServiceInterface interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (uint, error)
	Edit(ctx context.Context, id uint, req dto.EditUserRequest) error
	Delete(ctx context.Context, id uint, fullDelete bool) error
}

type UserServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Events      events.Publisher
	Invalidator CacheInvalidator
}

type UserService struct {
	db    *gorm.DB
	hooks writeHooks
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		db:    opts.DB,
		hooks: newWriteHooks(opts.Events, opts.Invalidator, opts.Logger),
	}
}

type userRow struct {
	ID      uint
	Name    string
	Role    string
	GroupID *uint
}

func (r userRow) response() dto.UserResponse {
	resp := dto.UserResponse{ID: r.ID, Name: r.Name, Role: r.Role}
	if r.GroupID != nil {
		resp.GroupID = *r.GroupID
	}
	return resp
}

func (s *UserService) users(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.name, users.role, user_groups.group_id").
		Joins("LEFT JOIN user_groups ON user_groups.user_id = users.id")
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	var rows []userRow
	if err := s.users(ctx).Order("users.id").Scan(&rows).Error; err != nil {
		return nil, storeError(err)
	}
	out := make([]dto.UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.response())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	var rows []userRow
	if err := s.users(ctx).Where("users.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return dto.UserResponse{}, storeError(err)
	}
	if len(rows) == 0 {
		return dto.UserResponse{}, errors.NotFound(errors.ResourceUser, "")
	}
	return rows[0].response(), nil
}

// Create inserts the user and its membership in one transaction.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (uint, error) {
	role, ok := validator.CanonicalRole(req.Role)
	if !ok {
		return 0, errors.Validation(validator.UnknownRoleMessage(req.Role))
	}
	user := &models.User{Name: strings.TrimSpace(req.Name), Role: role}
	if err := validator.ValidateUser(user); err != nil {
		return 0, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireGroup(tx, req.GroupID); err != nil {
			return err
		}
		return commands.NewCreateUserCommand(user, req.GroupID, tx).Execute()
	})
	if err != nil {
		return 0, storeError(err)
	}
	s.hooks.committed(ctx, "", nil)
	return user.ID, nil
}

// Edit updates name, role and group together; absent fields are kept.
func (s *UserService) Edit(ctx context.Context, id uint, req dto.EditUserRequest) error {
	var name, role *string
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		if n == "" {
			return errors.Validation("User name must not be empty")
		}
		name = &n
	}
	if req.Role != nil {
		r, ok := validator.CanonicalRole(*req.Role)
		if !ok {
			return errors.Validation(validator.UnknownRoleMessage(*req.Role))
		}
		role = &r
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, id); err != nil {
			return err
		}
		if req.GroupID != nil {
			if err := requireGroup(tx, *req.GroupID); err != nil {
				return err
			}
		}
		return commands.NewEditUserCommand(id, name, role, req.GroupID, tx).Execute()
	})
	if err != nil {
		return storeError(err)
	}
	s.hooks.committed(ctx, "", nil)
	return nil
}

// Delete removes a user. A user with sales is only removed when fullDelete
// is set, in which case the sales are deleted in the same transaction.
func (s *UserService) Delete(ctx context.Context, id uint, fullDelete bool) error {
	var removedSales int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.Sale{}).Where("user_id = ?", id).Count(&removedSales).Error; err != nil {
			return err
		}
		if removedSales > 0 && !fullDelete {
			return errors.Conflict("User has recorded sales; pass fullDelete=true to delete the user and their sales")
		}
		var cmds []commands.Command
		if removedSales > 0 {
			cmds = append(cmds, commands.NewDeleteSalesByUserCommand(id, tx))
		}
		cmds = append(cmds, commands.NewDeleteUserCommand(id, tx))
		return commands.Run(cmds...)
	})
	if err != nil {
		return storeError(err)
	}
	s.hooks.committed(ctx, events.UserDeleted, map[string]any{"userId": id, "salesDeleted": removedSales})
	return nil
}

func requireUser(tx *gorm.DB, id uint) error {
	var user models.User
	if err := tx.Select("id").First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return errors.NotFound(errors.ResourceUser, "")
		}
		return err
	}
	return nil
}

func requireGroup(tx *gorm.DB, id uint) error {
	var group models.Group
	if err := tx.Select("id").First(&group, id).Error; err != nil {
		if isNotFound(err) {
			return errors.NotFound(errors.ResourceGroup, "")
		}
		return err
	}
	return nil
}
