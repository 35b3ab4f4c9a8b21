package controllers

import (
	"salestracker/dto"
	"salestracker/response"
	"salestracker/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Service services.GroupServiceInterface
}

func NewGroupController(service services.GroupServiceInterface) GroupController {
	return GroupController{Service: service}
}

func (g GroupController) GetGroups(c *gin.Context) {
	groups, err := g.Service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, groups, len(groups))
}

func (g GroupController) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	id, err := g.Service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.IDResponse{ID: id})
}

// DeleteGroup fails with 409 while the group has members.
func (g GroupController) DeleteGroup(c *gin.Context) {
	id, err := parseID("groupId", c.Param("groupId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := g.Service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}
