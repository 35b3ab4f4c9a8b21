package controllers

import (
	"context"
	"net/http"
	"time"

	"salestracker/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	DB *gorm.DB
	// Redis is nil when the revenue cache is disabled.
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) HealthController {
	return HealthController{DB: db, Redis: rdb}
}

func (h HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "cache": "disabled"}

	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = "unavailable"
	}
	if h.Redis != nil {
		checks["cache"] = "ok"
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			checks["cache"] = "unavailable"
		}
	}

	code, mess := 1, "Success"
	if status != http.StatusOK {
		code, mess = 0, "Unhealthy"
	}
	c.JSON(status, response.Response{Code: code, Mess: mess, Data: checks})
}
