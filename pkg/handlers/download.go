package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/goxp/cloud0/ginext"

	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "max-age=0, no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Data(http.StatusOK, utils.XLSX_CONTENT_TYPE, data)
}

func abortJSON(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// abortError keeps the code of a ginext error, anything else is a 500.
func abortError(c *gin.Context, err error) {
	var apiErr ginext.ApiError
	if errors.As(err, &apiErr) {
		abortJSON(c, apiErr.Code(), err.Error())
		return
	}
	abortJSON(c, http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
}
