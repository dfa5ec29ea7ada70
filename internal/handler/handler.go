package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/pkg/apperror"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.New(apperror.ErrBadRequest, "ID is required")
	}
	return uint(id), nil
}
