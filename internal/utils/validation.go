package utils

import (
	"github.com/gin-gonic/gin"
)

// BindAndValidate binds the JSON request body into obj and sends a
// 400 response on failure. Returns true when binding succeeded.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
