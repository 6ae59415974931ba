package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 1
	PageMaxNum     = 100
)

// getStatusCode maps a domain error kind to its HTTP status
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = domain.ErrInternalServerError.Error()
	}
	c.JSON(code, ResponseError{Message: msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ResponseError{Message: request.FormatValidationError(err)})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func pageNum(c *gin.Context) int64 {
	num, err := strconv.ParseInt(c.Query("num"), 10, 64)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		return DefaultPageNum
	}
	return num
}

// scopeOf 匿名请求按普通用户处理
func scopeOf(c *gin.Context) domain.Scope {
	return domain.ScopeFromRole(c.GetString(middleware.CtxRole))
}

func currentUser(c *gin.Context) (int64, bool) {
	uid := c.GetInt64(middleware.CtxUserID)
	if uid <= 0 {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return 0, false
	}
	return uid, true
}
