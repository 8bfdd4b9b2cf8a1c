package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

func ParseUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	s := c.Param(param)
	if s == "" {
		return uuid.Nil, ErrEmptyParameter
	}
	return uuid.Parse(s)
}

func ParseIntParam(c *gin.Context, param string) (int, error) {
	s := c.Param(param)
	if s == "" {
		return 0, ErrEmptyParameter
	}
	return strconv.Atoi(s)
}
