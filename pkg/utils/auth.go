package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uuid.UUID, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
