package controllers

import (
	"salestracker/dto"
	"salestracker/response"
	"salestracker/services"

	"github.com/gin-gonic/gin"
)

type RevenueController struct {
	Service services.RevenueServiceInterface
}

func NewRevenueController(service services.RevenueServiceInterface) RevenueController {
	return RevenueController{Service: service}
}

func bindRevenueFilter(c *gin.Context) (services.RevenueFilter, bool) {
	var q dto.RevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return services.RevenueFilter{}, false
	}
	filter, err := services.NewRevenueFilter(q)
	if err != nil {
		response.Error(c, err)
		return services.RevenueFilter{}, false
	}
	return filter, true
}

// GetRevenue godoc
// @Summary      Monthly revenue
// @Description  Revenue per month inside the window, optionally restricted to groups and roles and broken down by user.
// @Tags         revenue
// @Produce      json
// @Param        fromMonth             query  string    true   "start month, 01-12"
// @Param        fromYear              query  string    true   "start year, 4 digits"
// @Param        toMonth               query  string    true   "end month, 01-12"
// @Param        toYear                query  string    true   "end year, 4 digits"
// @Param        groupIds              query  []string  false  "group ids"
// @Param        roles                 query  []string  false  "roles"
// @Param        sortBy                query  string    false  "month, totalSaleRevenue, numberOfSales or averageRevenueBySales"
// @Param        sortDirection         query  string    false  "ASC or DESC"
// @Param        includeUserBreakdown  query  bool      false  "nest per-user rows in each month"
// @Success      200  {object}  response.Response{data=[]dto.MonthBucket}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /revenue [get]
func (r RevenueController) GetRevenue(c *gin.Context) {
	filter, ok := bindRevenueFilter(c)
	if !ok {
		return
	}
	buckets, err := r.Service.Aggregate(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, buckets, len(buckets))
}

// GetRevenueSummary godoc
// @Summary      Revenue summary
// @Description  Total, count and average over the filtered monthly revenue.
// @Tags         revenue
// @Produce      json
// @Param        fromMonth  query  string  true  "start month, 01-12"
// @Param        fromYear   query  string  true  "start year, 4 digits"
// @Param        toMonth    query  string  true  "end month, 01-12"
// @Param        toYear     query  string  true  "end year, 4 digits"
// @Success      200  {object}  response.Response{data=dto.RevenueSummary}
// @Router       /revenue/summary [get]
func (r RevenueController) GetRevenueSummary(c *gin.Context) {
	filter, ok := bindRevenueFilter(c)
	if !ok {
		return
	}
	summary, err := r.Service.Summary(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

// GetUserRevenue godoc
// @Summary      Monthly revenue of one user
// @Tags         revenue
// @Produce      json
// @Param        userId         path   int     true   "user id"
// @Param        fromMonth      query  string  true   "start month, 01-12"
// @Param        fromYear       query  string  true   "start year, 4 digits"
// @Param        toMonth        query  string  true   "end month, 01-12"
// @Param        toYear         query  string  true   "end year, 4 digits"
// @Param        sortBy         query  string  false  "month, totalSaleRevenue, numberOfSales or averageRevenueBySales"
// @Param        sortDirection  query  string  false  "ASC or DESC"
// @Success      200  {object}  response.Response{data=[]dto.MonthBucket}
// @Failure      404  {object}  response.Response
// @Router       /revenue/users/{userId} [get]
func (r RevenueController) GetUserRevenue(c *gin.Context) {
	userID, err := parseID("userId", c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var q dto.UserRevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	window, sort, err := services.NewUserRevenueWindow(q)
	if err != nil {
		response.Error(c, err)
		return
	}
	buckets, err := r.Service.AggregateForUser(c.Request.Context(), userID, window, sort)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithTotal(c, buckets, len(buckets))
}
