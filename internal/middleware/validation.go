package middleware

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body into obj using gin's validator, which carries
// the custom gpa, decision, unitype and portalmail rules. On failure it writes a
// 400 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
