package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
)

func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be a number")
	}
	return id, nil
}
