package controllers

import (
	"salestracker/dto"
	"salestracker/response"
	"salestracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface) UserController {
	return UserController{Service: service}
}

func (u UserController) GetUsers(c *gin.Context) {
	users, err := u.Service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, users, len(users))
}

func (u UserController) GetUserByID(c *gin.Context) {
	id, err := parseID("userId", c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := u.Service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (u UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	id, err := u.Service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.IDResponse{ID: id})
}

func (u UserController) UpdateUser(c *gin.Context) {
	id, err := parseID("userId", c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := u.Service.Edit(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}

// DeleteUser removes a user; ?fullDelete=true also removes their sales.
func (u UserController) DeleteUser(c *gin.Context) {
	id, err := parseID("userId", c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var q dto.DeleteUserQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := u.Service.Delete(c.Request.Context(), id, q.FullDelete); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}
