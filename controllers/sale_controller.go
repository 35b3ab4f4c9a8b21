package controllers

import (
	"salestracker/dto"
	"salestracker/response"
	"salestracker/services"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	Service services.SaleServiceInterface
}

func NewSaleController(service services.SaleServiceInterface) SaleController {
	return SaleController{Service: service}
}

func (s SaleController) GetSale(c *gin.Context) {
	id, err := parseID("saleId", c.Param("saleId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	sale, err := s.Service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sale)
}

func (s SaleController) GetSalesByUser(c *gin.Context) {
	userID, err := parseID("userId", c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var q dto.SalesByUserQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	sales, err := s.Service.ListByUser(c.Request.Context(), userID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, sales, len(sales))
}

func (s SaleController) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	id, err := s.Service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.IDResponse{ID: id})
}

func (s SaleController) DeleteSale(c *gin.Context) {
	id, err := parseID("saleId", c.Param("saleId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := s.Service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}
