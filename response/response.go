package response

import (
	"log/slog"
	"net/http"

	"salestracker/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON reply. Code is 1 on success and 0
// on failure; Kind names the error kind on failure.
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Kind string      `json:"kind,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success returns 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Success",
		Total: total,
		Data:  data,
	})
}

// Created returns 201 with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRange, errors.ErrCodeInvalidSort, errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err. AppError messages are shown as is; anything else, and
// the cause of server-side failures, only goes to the log.
func Error(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		appErr = errors.Internal("Internal server error", err)
	}

	status := StatusOf(appErr.Code)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "kind", appErr.Code, "error", err)
	}

	c.AbortWithStatusJSON(status, Response{
		Code: 0,
		Mess: appErr.Message,
		Kind: string(appErr.Code),
	})
}

// NotFound is the reply for unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Route not found",
		Kind: string(errors.ErrCodeNotFound),
	})
}
