package services

import (
	"context"
	"testing"

	"salestracker/constants"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_CreateAndList(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := NewGroupService(GroupServiceOptions{DB: db})

	id, err := svc.Create(context.Background(), dto.CreateGroupRequest{GroupName: " West "})
	require.NoError(t, err)

	groups, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.GroupResponse{{ID: id, Name: "West"}}, groups)

	_, err = svc.Create(context.Background(), dto.CreateGroupRequest{GroupName: "   "})
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestGroupService_DeleteWithMembersConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	west := testutil.Group(t, db, "West")
	east := testutil.Group(t, db, "East")
	ann := testutil.User(t, db, "Ann", constants.RoleSalesManager, west)

	groups := NewGroupService(GroupServiceOptions{DB: db})
	users := NewUserService(UserServiceOptions{DB: db})

	err := groups.Delete(context.Background(), west)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConflict))

	require.NoError(t, users.Edit(context.Background(), ann, dto.EditUserRequest{GroupID: &east}))
	require.NoError(t, groups.Delete(context.Background(), west))

	err = groups.Delete(context.Background(), west)
	assert.ErrorIs(t, err, &errors.AppError{Code: errors.ErrCodeNotFound, Resource: errors.ResourceGroup})
}
